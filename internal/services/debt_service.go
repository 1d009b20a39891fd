package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"smartspend/internal/core"
	"smartspend/internal/events"
	"smartspend/internal/store"
)

// DebtService maintains the lending ledger. Settling and deleting are
// destructive enough to require an explicit confirmation flag; there is no
// undo in this system.
type DebtService struct {
	store     *store.Store
	publisher *events.Publisher
}

func NewDebtService(st *store.Store, publisher *events.Publisher) *DebtService {
	return &DebtService{store: st, publisher: publisher}
}

// Add records a new unsettled debt.
func (s *DebtService) Add(ctx context.Context, personName string, amount core.Money, debtType core.DebtType, date core.Date, notes string) (core.Debt, error) {
	d := core.Debt{
		ID:         uuid.NewString(),
		PersonName: personName,
		Amount:     amount,
		Type:       debtType,
		Date:       date,
		Notes:      notes,
	}
	if err := d.Validate(); err != nil {
		return core.Debt{}, fmt.Errorf("validate debt: %w", err)
	}

	s.store.AddDebt(ctx, d)
	s.publishChange(ctx, events.ActionCreated, d.ID)
	return d, nil
}

// Settle toggles the settled flag. Marking a debt settled requires
// confirmation; reverting to unsettled does not.
func (s *DebtService) Settle(ctx context.Context, id string, confirmed bool) (core.Debt, error) {
	d, ok := s.store.DebtByID(id)
	if !ok {
		return core.Debt{}, core.ErrNotFound
	}
	if !d.Settled && !confirmed {
		return core.Debt{}, core.ErrConfirmationRequired
	}

	updated, err := s.store.ToggleDebtSettled(ctx, id)
	if err != nil {
		return core.Debt{}, err
	}
	s.publishChange(ctx, events.ActionSettled, id)
	return updated, nil
}

// Delete permanently removes a debt from the ledger and both totals.
func (s *DebtService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return core.ErrConfirmationRequired
	}
	if err := s.store.DeleteDebt(ctx, id); err != nil {
		return err
	}
	s.publishChange(ctx, events.ActionDeleted, id)
	return nil
}

// List returns all debts, newest first.
func (s *DebtService) List() []core.Debt {
	return s.store.Debts()
}

// Totals derives the outstanding balance per direction.
func (s *DebtService) Totals() (lent, borrowed core.Money) {
	return core.OutstandingTotals(s.store.Debts())
}

func (s *DebtService) publishChange(ctx context.Context, action, id string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, events.EntityDebt, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"entity", events.EntityDebt, "action", action, "id", id, "error", err)
	}
}
