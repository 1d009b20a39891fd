// Package store owns the in-memory entity collections. Every mutation is a
// synchronous whole-collection replacement mirrored to the blob store; a
// failed mirror write is logged and otherwise ignored, never rolled back.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"smartspend/internal/core"
	"smartspend/internal/storage"
)

// BlobStore is the persistence collaborator: whole JSON collections keyed
// by entity kind.
type BlobStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

type Store struct {
	mu    sync.Mutex
	blobs BlobStore

	expenses   []core.Expense
	categories []core.Category
	debts      []core.Debt
	user       core.User
	theme      core.Theme
}

// New loads all collections from the blob store. Missing or corrupt data is
// replaced with an empty collection, the default category set, or the
// default theme; corruption is never surfaced to the caller.
func New(ctx context.Context, blobs BlobStore) *Store {
	s := &Store{blobs: blobs, theme: core.ThemeSystem}

	loadCollection(ctx, blobs, storage.KeyExpenses, &s.expenses)
	if !loadCollection(ctx, blobs, storage.KeyCategories, &s.categories) || len(s.categories) == 0 {
		s.categories = core.DefaultCategories()
	}
	loadCollection(ctx, blobs, storage.KeyDebts, &s.debts)
	loadCollection(ctx, blobs, storage.KeyUser, &s.user)

	var theme core.Theme
	if loadCollection(ctx, blobs, storage.KeyTheme, &theme) && core.ValidTheme(theme) {
		s.theme = theme
	}

	return s
}

func loadCollection(ctx context.Context, blobs BlobStore, key string, dst any) bool {
	data, err := blobs.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to load collection, starting empty", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.WarnContext(ctx, "Stored collection unreadable, starting empty", "key", key, "error", err)
		return false
	}
	return true
}

// persist mirrors one collection to the blob store. Failures are logged and
// ignored; in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode collection", "key", key, "error", err)
		return
	}
	if err := s.blobs.Save(ctx, key, data); err != nil {
		slog.ErrorContext(ctx, "Failed to persist collection", "key", key, "error", err)
	}
}

// --- Expenses ---

// Expenses returns a copy of the expense collection, newest first.
func (s *Store) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...)
}

// AddExpense prepends the expense and mirrors the collection.
func (s *Store) AddExpense(ctx context.Context, e core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]core.Expense{e}, s.expenses...)
	s.persist(ctx, storage.KeyExpenses, s.expenses)
}

// DeleteExpense removes the expense by id. Expenses are never edited in
// place, deletion is their only mutation.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[:0:0]
	found := false
	for _, e := range s.expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return core.ErrNotFound
	}
	s.expenses = kept
	s.persist(ctx, storage.KeyExpenses, s.expenses)
	return nil
}

// --- Categories ---

func (s *Store) Categories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Category(nil), s.categories...)
}

func (s *Store) CategoryByID(id string) (core.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return core.Category{}, false
}

func (s *Store) AddCategory(ctx context.Context, c core.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
	s.persist(ctx, storage.KeyCategories, s.categories)
}

// UpdateCategory replaces the category with the same id.
func (s *Store) UpdateCategory(ctx context.Context, c core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			s.persist(ctx, storage.KeyCategories, s.categories)
			return nil
		}
	}
	return core.ErrNotFound
}

// DeleteCategory removes the category by id. Expenses referencing it are
// left dangling; aggregation resolves them to the Unknown bucket.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0:0]
	found := false
	for _, c := range s.categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return core.ErrNotFound
	}
	s.categories = kept
	s.persist(ctx, storage.KeyCategories, s.categories)
	return nil
}

// ReplaceCategories swaps in a whole new category collection (reset).
func (s *Store) ReplaceCategories(ctx context.Context, categories []core.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]core.Category(nil), categories...)
	s.persist(ctx, storage.KeyCategories, s.categories)
}

// --- Debts ---

func (s *Store) Debts() []core.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Debt(nil), s.debts...)
}

func (s *Store) DebtByID(id string) (core.Debt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.debts {
		if d.ID == id {
			return d, true
		}
	}
	return core.Debt{}, false
}

func (s *Store) AddDebt(ctx context.Context, d core.Debt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debts = append([]core.Debt{d}, s.debts...)
	s.persist(ctx, storage.KeyDebts, s.debts)
}

// ToggleDebtSettled flips the settled flag and returns the updated debt.
func (s *Store) ToggleDebtSettled(ctx context.Context, id string) (core.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.debts {
		if s.debts[i].ID == id {
			s.debts[i].Settled = !s.debts[i].Settled
			s.persist(ctx, storage.KeyDebts, s.debts)
			return s.debts[i], nil
		}
	}
	return core.Debt{}, core.ErrNotFound
}

func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.debts[:0:0]
	found := false
	for _, d := range s.debts {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return core.ErrNotFound
	}
	s.debts = kept
	s.persist(ctx, storage.KeyDebts, s.debts)
	return nil
}

// --- Session & theme ---

func (s *Store) User() core.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) SetUser(ctx context.Context, u core.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.persist(ctx, storage.KeyUser, s.user)
}

func (s *Store) Theme() core.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) SetTheme(ctx context.Context, theme core.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.persist(ctx, storage.KeyTheme, s.theme)
}
