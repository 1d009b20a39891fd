package store

import (
	"context"
	"errors"
	"testing"

	"smartspend/internal/core"
	"smartspend/internal/storage"
	"smartspend/internal/storage/memory"
)

func newTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	blobs := memory.New()
	return New(context.Background(), blobs), blobs
}

func TestNewSeedsDefaultCategories(t *testing.T) {
	s, _ := newTestStore(t)

	cats := s.Categories()
	if len(cats) != 8 {
		t.Fatalf("expected 8 seeded categories, got %d", len(cats))
	}
	if cats[0].ID != "cat_food" {
		t.Errorf("unexpected first category: %+v", cats[0])
	}
}

func TestNewRecoversFromCorruptBlob(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()
	if err := blobs.Save(ctx, storage.KeyExpenses, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if err := blobs.Save(ctx, storage.KeyCategories, []byte("also broken")); err != nil {
		t.Fatal(err)
	}

	s := New(ctx, blobs)
	if len(s.Expenses()) != 0 {
		t.Error("corrupt expenses should load as empty")
	}
	if len(s.Categories()) != 8 {
		t.Error("corrupt categories should fall back to defaults")
	}
}

func TestExpensesPrependAndPersist(t *testing.T) {
	ctx := context.Background()
	s, blobs := newTestStore(t)

	first := core.Expense{ID: "e1", Description: "older", Amount: core.Money{Cents: 100}, Date: core.NewDate(2024, 3, 1)}
	second := core.Expense{ID: "e2", Description: "newer", Amount: core.Money{Cents: 200}, Date: core.NewDate(2024, 3, 2)}
	s.AddExpense(ctx, first)
	s.AddExpense(ctx, second)

	got := s.Expenses()
	if len(got) != 2 || got[0].ID != "e2" {
		t.Fatalf("expected newest first, got %+v", got)
	}

	// A fresh store over the same blobs sees the same collection.
	reloaded := New(ctx, blobs)
	if len(reloaded.Expenses()) != 2 {
		t.Fatalf("expected persisted expenses, got %d", len(reloaded.Expenses()))
	}
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.AddExpense(ctx, core.Expense{ID: "e1"})

	if err := s.DeleteExpense(ctx, "e1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(s.Expenses()) != 0 {
		t.Error("expense still present after delete")
	}
	if err := s.DeleteExpense(ctx, "e1"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleDebtSettled(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.AddDebt(ctx, core.Debt{ID: "d1", PersonName: "A", Amount: core.Money{Cents: 500}, Type: core.Lent})

	d, err := s.ToggleDebtSettled(ctx, "d1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !d.Settled {
		t.Error("expected settled after first toggle")
	}

	d, err = s.ToggleDebtSettled(ctx, "d1")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if d.Settled {
		t.Error("expected unsettled after second toggle")
	}

	if _, err := s.ToggleDebtSettled(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddCategory(ctx, core.Category{ID: "cat_custom", Name: "Books", Color: "#112233"})
	if _, ok := s.CategoryByID("cat_custom"); !ok {
		t.Fatal("added category not found")
	}

	updated := core.Category{ID: "cat_custom", Name: "Books & Zines", Color: "#112233"}
	if err := s.UpdateCategory(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.CategoryByID("cat_custom")
	if got.Name != "Books & Zines" {
		t.Errorf("rename not applied: %+v", got)
	}

	if err := s.DeleteCategory(ctx, "cat_custom"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.CategoryByID("cat_custom"); ok {
		t.Error("category still present after delete")
	}

	s.ReplaceCategories(ctx, core.DefaultCategories())
	if len(s.Categories()) != 8 {
		t.Error("reset did not restore defaults")
	}
}

func TestThemeAndUserPersist(t *testing.T) {
	ctx := context.Background()
	s, blobs := newTestStore(t)

	if s.Theme() != core.ThemeSystem {
		t.Errorf("default theme = %s, want system", s.Theme())
	}
	s.SetTheme(ctx, core.ThemeDark)
	s.SetUser(ctx, core.User{Active: true, Name: "sam"})

	reloaded := New(ctx, blobs)
	if reloaded.Theme() != core.ThemeDark {
		t.Errorf("theme not persisted, got %s", reloaded.Theme())
	}
	u := reloaded.User()
	if !u.Active || u.Name != "sam" {
		t.Errorf("user not persisted: %+v", u)
	}
}
