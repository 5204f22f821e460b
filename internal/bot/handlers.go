package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"finledger/internal/core"
	"finledger/internal/export"
	"finledger/internal/i18n"
	"finledger/internal/importer"
	"finledger/internal/ledger"
)

// Store is the slice of the ledger store the dispatcher talks to
// directly; aggregation goes through the ledger service.
type Store interface {
	Insert(ctx context.Context, t core.Transaction) (int64, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
	Language(ctx context.Context, userID int64) (string, error)
	SetLanguage(ctx context.Context, userID int64, code string) error
}

type Handler struct {
	store    Store
	ledger   *ledger.Service
	importer *importer.Reconciler
	now      func() time.Time
}

// lang resolves the caller's display language, falling back to the
// default when the preference cannot be read.
func (h *Handler) lang(ctx context.Context, c tele.Context) string {
	lang, err := h.store.Language(ctx, c.Sender().ID)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load language preference",
			"user_id", c.Sender().ID, "error", err)
		return core.DefaultLanguage
	}
	return lang
}

func displayName(u *tele.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

func (h *Handler) Start(c tele.Context) error {
	ctx := context.Background()
	return c.Send(i18n.T(h.lang(ctx, c), i18n.MsgStart))
}

func (h *Handler) Help(c tele.Context) error {
	ctx := context.Background()
	return c.Send(i18n.T(h.lang(ctx, c), i18n.MsgHelp))
}

func (h *Handler) Categories(c tele.Context) error {
	ctx := context.Background()
	return c.Send(i18n.T(h.lang(ctx, c), i18n.MsgCategories))
}

// parseAdd parses `/add <amount> [category] [description...]`. The
// resolved category is lowercased; an absent description falls back to
// the category at insertion time.
func parseAdd(args []string) (core.Transaction, error) {
	if len(args) == 0 {
		return core.Transaction{}, core.ErrMissingArgument
	}
	amount, err := core.ParseAmount(args[0])
	if err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{Amount: amount}
	if len(args) > 1 {
		t.Category = args[1]
		if len(args) > 2 {
			t.Description = strings.Join(args[2:], " ")
		}
	}
	return t, nil
}

// Add records one signed transaction. Unlike bulk import, any invalid
// input rejects the whole request.
func (h *Handler) Add(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	lang := h.lang(ctx, c)

	t, err := parseAdd(c.Args())
	if err != nil {
		return c.Send(i18n.T(lang, i18n.MsgAmountError))
	}

	t.UserID = sender.ID
	t.Username = displayName(sender)
	t.Timestamp = h.now()

	if _, err := h.store.Insert(ctx, t); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}

	balance, err := h.ledger.Balance(ctx, sender.ID)
	if err != nil {
		return fmt.Errorf("add transaction balance: %w", err)
	}

	category := core.NormalizeCategory(t.Category)
	description := t.Description
	if description == "" {
		description = category
	}
	return c.Send(i18n.T(lang, i18n.MsgAdded,
		t.Amount.StringFixed(2), category, description, balance.StringFixed(2)))
}

func (h *Handler) Balance(c tele.Context) error {
	ctx := context.Background()
	lang := h.lang(ctx, c)

	summary, err := h.ledger.BalanceSummary(ctx, c.Sender().ID)
	if errors.Is(err, ledger.ErrNoTransactions) {
		return c.Send(emptyLedgerReply)
	}
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}

	return c.Send(i18n.T(lang, i18n.MsgBalance,
		summary.Balance.StringFixed(2),
		summary.Income.StringFixed(2),
		summary.Expenses.StringFixed(2),
		summary.Count,
		statusLine(summary.Balance)))
}

func (h *Handler) History(c tele.Context) error {
	ctx := context.Background()

	txs, total, err := h.ledger.RecentHistory(ctx, c.Sender().ID)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if total == 0 {
		return c.Send(emptyHistoryReply)
	}
	return c.Send(historyMessage(txs, total))
}

func (h *Handler) Report(c tele.Context) error {
	ctx := context.Background()
	lang := h.lang(ctx, c)

	args := c.Args()
	if len(args) < 2 {
		return c.Send(reportUsageReply)
	}

	start, err := core.ParseDate(args[0])
	if err != nil {
		return c.Send(i18n.T(lang, i18n.MsgInvalidDate))
	}
	end, err := core.ParseDate(args[1])
	if err != nil {
		return c.Send(i18n.T(lang, i18n.MsgInvalidDate))
	}
	category := ""
	if len(args) > 2 {
		category = strings.ToLower(args[2])
	}

	report, err := h.ledger.DateRangeReport(ctx, c.Sender().ID, start, end, category)
	if errors.Is(err, ledger.ErrNoTransactions) {
		return c.Send(i18n.T(lang, i18n.MsgNoTransactions))
	}
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	shownCategory := category
	if shownCategory == "" {
		shownCategory = "all"
	}
	return c.Send(i18n.T(lang, i18n.MsgReport,
		args[0], args[1], shownCategory,
		report.Income.StringFixed(2),
		report.Expenses.StringFixed(2),
		report.Net.StringFixed(2),
		report.Count))
}

func (h *Handler) Export(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	lang := h.lang(ctx, c)

	series, err := h.ledger.RunningBalanceSeries(ctx, sender.ID)
	if err != nil {
		return fmt.Errorf("export series: %w", err)
	}
	if len(series) == 0 {
		return c.Send(emptyExportReply)
	}

	summary, err := h.ledger.BalanceSummary(ctx, sender.ID)
	if err != nil {
		return fmt.Errorf("export summary: %w", err)
	}

	if err := c.Send(i18n.T(lang, i18n.MsgExport)); err != nil {
		return err
	}

	buf, err := export.Workbook(series, summary)
	if err != nil {
		return fmt.Errorf("export workbook: %w", err)
	}

	now := h.now()
	caption := fmt.Sprintf("📊 *Financial Report Exported*\n\n📝 Total Transactions: %d\n💰 Final Balance: `%s`\n📅 Export Date: %s",
		summary.Count, summary.Balance.StringFixed(2), now.Format("2006-01-02 15:04"))

	return c.Send(&tele.Document{
		File:     tele.FromReader(buf),
		FileName: export.Filename(now),
		Caption:  caption,
	})
}

func (h *Handler) Clear(c tele.Context) error {
	ctx := context.Background()
	lang := h.lang(ctx, c)

	removed, err := h.store.DeleteAllForUser(ctx, c.Sender().ID)
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if removed == 0 {
		return c.Send(emptyClearReply)
	}
	return c.Send(i18n.T(lang, i18n.MsgCleared, removed))
}

func (h *Handler) SetLanguage(c tele.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) == 0 {
		return c.Send(languageUsageReply)
	}
	code, err := core.ParseLanguage(args[0])
	if errors.Is(err, core.ErrUnknownLanguage) {
		return c.Send(languageUsageReply)
	}

	if err := h.store.SetLanguage(ctx, c.Sender().ID, code); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	// Confirm in the freshly chosen language.
	return c.Send(i18n.T(code, i18n.MsgLangSet))
}

// ImportFile handles uploaded XLSX/CSV documents as bulk imports.
// Malformed rows are skipped without failing the batch; a table missing
// the Date or Amount column rejects the whole upload.
func (h *Handler) ImportFile(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	lang := h.lang(ctx, c)

	doc := c.Message().Document
	if doc == nil {
		return nil
	}

	rc, err := c.Bot().File(&doc.File)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to download document",
			"user_id", sender.ID, "file", doc.FileName, "error", err)
		return c.Send(i18n.T(lang, i18n.MsgFileError))
	}
	defer rc.Close()

	tbl, err := importer.Decode(doc.FileName, rc)
	if errors.Is(err, importer.ErrUnsupportedFormat) {
		// Not a spreadsheet upload; nothing for this bot to do.
		return nil
	}
	if err != nil {
		return c.Send(i18n.T(lang, i18n.MsgFileError))
	}

	res, err := h.importer.Reconcile(ctx, sender.ID, displayName(sender), tbl)
	if errors.Is(err, importer.ErrMissingColumns) {
		return c.Send(i18n.T(lang, i18n.MsgFileError))
	}
	if err != nil {
		return fmt.Errorf("import file: %w", err)
	}

	balance, err := h.ledger.Balance(ctx, sender.ID)
	if err != nil {
		return fmt.Errorf("import file balance: %w", err)
	}
	return c.Send(i18n.T(lang, i18n.MsgFileProcessed, res.Inserted, balance.StringFixed(2)))
}
