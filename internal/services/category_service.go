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

// CategoryService manages the category taxonomy. Deleting a category does
// not cascade: expenses referencing it keep their dangling id and resolve
// to the Unknown bucket during aggregation.
type CategoryService struct {
	store     *store.Store
	publisher *events.Publisher
}

func NewCategoryService(st *store.Store, publisher *events.Publisher) *CategoryService {
	return &CategoryService{store: st, publisher: publisher}
}

func (s *CategoryService) List() []core.Category {
	return s.store.Categories()
}

// Add creates a user category. User categories are never default-flagged.
func (s *CategoryService) Add(ctx context.Context, name, color string, budget *core.Money) (core.Category, error) {
	c := core.Category{
		ID:     "cat_" + uuid.NewString(),
		Name:   name,
		Color:  color,
		Budget: budget,
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("validate category: %w", err)
	}

	s.store.AddCategory(ctx, c)
	s.publishChange(ctx, events.ActionCreated, c.ID)
	return c, nil
}

// Update renames, recolors, or re-budgets an existing category. The id and
// default flag never change.
func (s *CategoryService) Update(ctx context.Context, id, name, color string, budget *core.Money) (core.Category, error) {
	existing, ok := s.store.CategoryByID(id)
	if !ok {
		return core.Category{}, core.ErrNotFound
	}

	updated := existing
	updated.Name = name
	updated.Color = color
	updated.Budget = budget
	if err := updated.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("validate category: %w", err)
	}

	if err := s.store.UpdateCategory(ctx, updated); err != nil {
		return core.Category{}, err
	}
	return updated, nil
}

// Delete removes a non-default category after confirmation.
func (s *CategoryService) Delete(ctx context.Context, id string, confirmed bool) error {
	c, ok := s.store.CategoryByID(id)
	if !ok {
		return core.ErrNotFound
	}
	if c.IsDefault {
		return core.ErrDefaultCategory
	}
	if !confirmed {
		return core.ErrConfirmationRequired
	}

	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.publishChange(ctx, events.ActionDeleted, id)
	return nil
}

// Reset replaces the whole taxonomy with the default set, discarding custom
// categories.
func (s *CategoryService) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return core.ErrConfirmationRequired
	}
	s.store.ReplaceCategories(ctx, core.DefaultCategories())
	s.publishChange(ctx, events.ActionReset, "")
	return nil
}

func (s *CategoryService) publishChange(ctx context.Context, action, id string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, events.EntityCategory, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"entity", events.EntityCategory, "action", action, "id", id, "error", err)
	}
}
