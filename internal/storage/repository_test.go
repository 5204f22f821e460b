package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/core"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustInsert(t *testing.T, repo *Repository, tx core.Transaction) int64 {
	t.Helper()
	id, err := repo.Insert(context.Background(), tx)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	return id
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(core.TimestampLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	repo := openTestRepo(t)
	now := at(t, "2025-08-19 10:00:00")

	first := mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: now, Amount: decimal.RequireFromString("10")})
	second := mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: now, Amount: decimal.RequireFromString("20")})

	if second <= first {
		t.Errorf("expected monotonically assigned ids, got %d then %d", first, second)
	}
}

func TestInsertNormalizesCategoryAndDescription(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := at(t, "2025-08-19 10:00:00")

	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: now, Amount: decimal.RequireFromString("5"), Category: "SaLaRy"})
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: now, Amount: decimal.RequireFromString("5")})

	txs, err := repo.ListByUser(ctx, 1, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Category != "salary" || txs[0].Description != "salary" {
		t.Errorf("expected lowercased category used as description, got %q/%q", txs[0].Category, txs[0].Description)
	}
	if txs[1].Category != "other" || txs[1].Description != "other" {
		t.Errorf("expected defaults, got %q/%q", txs[1].Category, txs[1].Description)
	}
}

func TestSumByUser(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := at(t, "2025-08-19 10:00:00")

	sum, err := repo.SumByUser(ctx, 42)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if !sum.IsZero() {
		t.Errorf("empty ledger sum = %s, want 0", sum)
	}

	for _, amount := range []string{"1000", "-250", "0.10", "-0.30"} {
		mustInsert(t, repo, core.Transaction{UserID: 42, Timestamp: now, Amount: decimal.RequireFromString(amount)})
	}
	// A different user's rows must not leak into the sum.
	mustInsert(t, repo, core.Transaction{UserID: 7, Timestamp: now, Amount: decimal.RequireFromString("9999")})

	sum, err = repo.SumByUser(ctx, 42)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if want := decimal.RequireFromString("749.80"); !sum.Equal(want) {
		t.Errorf("sum = %s, want %s", sum, want)
	}
}

func TestListByUserOrdering(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: at(t, "2025-08-02 09:00:00"), Amount: decimal.RequireFromString("2")})
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: at(t, "2025-08-01 09:00:00"), Amount: decimal.RequireFromString("1")})
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: at(t, "2025-08-03 09:00:00"), Amount: decimal.RequireFromString("3")})

	asc, err := repo.ListByUser(ctx, 1, true)
	if err != nil {
		t.Fatalf("list ascending: %v", err)
	}
	for i, want := range []string{"1", "2", "3"} {
		if !asc[i].Amount.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ascending[%d] = %s, want %s", i, asc[i].Amount, want)
		}
	}

	desc, err := repo.ListByUser(ctx, 1, false)
	if err != nil {
		t.Fatalf("list descending: %v", err)
	}
	for i, want := range []string{"3", "2", "1"} {
		if !desc[i].Amount.Equal(decimal.RequireFromString(want)) {
			t.Errorf("descending[%d] = %s, want %s", i, desc[i].Amount, want)
		}
	}
}

func TestListByUserAndDateRange(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: at(t, "2025-08-01 00:00:00"), Amount: decimal.RequireFromString("1"), Category: "food"})
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: at(t, "2025-08-01 23:59:59"), Amount: decimal.RequireFromString("2"), Category: "salary"})
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: at(t, "2025-08-02 00:00:00"), Amount: decimal.RequireFromString("3"), Category: "food"})

	day, _ := time.Parse(core.DateLayout, "2025-08-01")

	t.Run("single day bounds are widened to the full day", func(t *testing.T) {
		txs, err := repo.ListByUserAndDateRange(ctx, 1, day, day, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions on 2025-08-01, got %d", len(txs))
		}
	})

	t.Run("category filter is case-insensitive", func(t *testing.T) {
		txs, err := repo.ListByUserAndDateRange(ctx, 1, day, day, "FOOD")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(txs) != 1 || !txs[0].Amount.Equal(decimal.RequireFromString("1")) {
			t.Fatalf("expected only the food transaction, got %v", txs)
		}
	})

	t.Run("empty window yields empty slice", func(t *testing.T) {
		past, _ := time.Parse(core.DateLayout, "2020-01-01")
		txs, err := repo.ListByUserAndDateRange(ctx, 1, past, past, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(txs) != 0 {
			t.Fatalf("expected no transactions, got %d", len(txs))
		}
	})
}

func TestRecentByUser(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		mustInsert(t, repo, core.Transaction{
			UserID:    1,
			Timestamp: time.Date(2025, 8, day, 12, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromInt(int64(day)),
		})
	}

	txs, err := repo.RecentByUser(ctx, 1, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	for i, want := range []string{"5", "4", "3"} {
		if !txs[i].Amount.Equal(decimal.RequireFromString(want)) {
			t.Errorf("recent[%d] = %s, want %s", i, txs[i].Amount, want)
		}
	}
}

func TestDeleteAllForUser(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := at(t, "2025-08-19 10:00:00")

	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: now, Amount: decimal.RequireFromString("1")})
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: now, Amount: decimal.RequireFromString("2")})
	mustInsert(t, repo, core.Transaction{UserID: 2, Timestamp: now, Amount: decimal.RequireFromString("3")})

	removed, err := repo.DeleteAllForUser(ctx, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	txs, err := repo.ListByUser(ctx, 1, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected empty ledger after clear, got %d rows", len(txs))
	}
	sum, err := repo.SumByUser(ctx, 1)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if !sum.IsZero() {
		t.Errorf("sum after clear = %s, want 0", sum)
	}

	// Other users keep their data; clearing twice is a no-op.
	if other, _ := repo.ListByUser(ctx, 2, true); len(other) != 1 {
		t.Errorf("other user's ledger affected by clear")
	}
	removed, err = repo.DeleteAllForUser(ctx, 1)
	if err != nil || removed != 0 {
		t.Errorf("second clear: removed=%d err=%v, want 0 and nil", removed, err)
	}
}

func TestLanguagePreference(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	lang, err := repo.Language(ctx, 1)
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if lang != core.DefaultLanguage {
		t.Errorf("unset language = %q, want %q", lang, core.DefaultLanguage)
	}

	if err := repo.SetLanguage(ctx, 1, "ru"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if lang, _ = repo.Language(ctx, 1); lang != "ru" {
		t.Errorf("language = %q, want ru", lang)
	}

	// Upsert overwrites unconditionally.
	if err := repo.SetLanguage(ctx, 1, "kg"); err != nil {
		t.Fatalf("set language again: %v", err)
	}
	if lang, _ = repo.Language(ctx, 1); lang != "kg" {
		t.Errorf("language = %q, want kg", lang)
	}
}

func TestTimestampSecondPrecision(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	precise := time.Date(2025, 8, 19, 10, 30, 45, 123456789, time.UTC)
	mustInsert(t, repo, core.Transaction{UserID: 1, Timestamp: precise, Amount: decimal.RequireFromString("1")})

	txs, err := repo.ListByUser(ctx, 1, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := txs[0].Timestamp.Format(core.TimestampLayout); got != "2025-08-19 10:30:45" {
		t.Errorf("stored timestamp = %s, want second precision", got)
	}
}
