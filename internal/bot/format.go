package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"finledger/internal/core"
)

// Replies without a catalog entry; kept in English regardless of the
// user's language, matching the rest of the command surface's prompts.
const (
	emptyLedgerReply  = "📊 No transactions recorded yet.\nUse `/add` to start tracking your finances!"
	emptyHistoryReply = "📋 *Transaction History*\n\nNo transactions found.\nUse `/add` to start tracking your finances!"
	emptyExportReply  = "📊 No transactions to export.\nAdd some transactions first using `/add`!"
	emptyClearReply   = "🗑️ No transactions to clear!"
	reportUsageReply  = "⚠️ Format: `/report 2025-08-01 2025-08-19 [category]`"
)

var languageUsageReply = fmt.Sprintf("⚠️ Available languages: %s\nExample: `/setlang ru`",
	strings.Join(core.Languages, ", "))

func statusLine(balance decimal.Decimal) string {
	if balance.Sign() >= 0 {
		return "🟢 You're in the green!"
	}
	return "🔴 You're in the red!"
}

// signedAmount renders an amount with an explicit sign, income carrying
// a leading plus.
func signedAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.Sign() >= 0 {
		return "+" + s
	}
	return s
}

// historyMessage renders the recent-transactions listing, newest first,
// noting how many older records were omitted.
func historyMessage(txs []core.Transaction, total int64) string {
	var b strings.Builder
	b.WriteString("📋 *Recent Transactions*\n\n")

	for i, t := range txs {
		emoji := "💸"
		if t.IsIncome() {
			emoji = "💰"
		}
		fmt.Fprintf(&b, "%d. %s `%s` - %s\n    📂 %s | 📅 %s\n\n",
			i+1, emoji, signedAmount(t.Amount), t.Description,
			t.Category, t.Timestamp.Format("01/02 15:04"))
	}

	if omitted := total - int64(len(txs)); omitted > 0 {
		fmt.Fprintf(&b, "... and %d more transactions\n", omitted)
		b.WriteString("Use `/export` to get all transactions in Excel format.")
	}
	return b.String()
}
