package core

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		ID:          "e1",
		Description: "Lunch",
		Amount:      Money{Cents: 15000},
		Date:        NewDate(2024, 3, 1),
		CategoryID:  "cat_food",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	t.Run("empty description", func(t *testing.T) {
		e := valid
		e.Description = "   "
		if !errors.Is(e.Validate(), ErrEmptyDescription) {
			t.Error("expected ErrEmptyDescription")
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		e := valid
		e.Amount = Money{}
		if !errors.Is(e.Validate(), ErrInvalidAmount) {
			t.Error("expected ErrInvalidAmount")
		}
	})

	t.Run("zero date", func(t *testing.T) {
		e := valid
		e.Date = Date{}
		if !errors.Is(e.Validate(), ErrInvalidDate) {
			t.Error("expected ErrInvalidDate")
		}
	})

	t.Run("overlong description", func(t *testing.T) {
		e := valid
		e.Description = strings.Repeat("x", 201)
		if e.Validate() == nil {
			t.Error("expected error for overlong description")
		}
	})
}

func TestDebtValidate(t *testing.T) {
	valid := Debt{
		ID:         "d1",
		PersonName: "A",
		Amount:     Money{Cents: 50000},
		Type:       Lent,
		Date:       NewDate(2024, 1, 1),
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid debt rejected: %v", err)
	}

	t.Run("bad type", func(t *testing.T) {
		d := valid
		d.Type = "gifted"
		if !errors.Is(d.Validate(), ErrInvalidDebtType) {
			t.Error("expected ErrInvalidDebtType")
		}
	})

	t.Run("empty person", func(t *testing.T) {
		d := valid
		d.PersonName = ""
		if !errors.Is(d.Validate(), ErrEmptyPersonName) {
			t.Error("expected ErrEmptyPersonName")
		}
	})
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 3, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-01"` {
		t.Fatalf("unexpected encoding: %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.SameMonth(d) || back.Day() != 1 {
		t.Fatalf("round trip mismatch: %s", back)
	}
}

func TestDefaultCategoriesAreFreshCopies(t *testing.T) {
	a := DefaultCategories()
	b := DefaultCategories()
	a[0].Name = "mutated"
	if b[0].Name == "mutated" {
		t.Fatal("DefaultCategories must return independent slices")
	}
	if len(b) != 8 {
		t.Fatalf("expected 8 default categories, got %d", len(b))
	}
	for _, c := range b {
		if !c.IsDefault {
			t.Errorf("category %s must be default-flagged", c.ID)
		}
	}
}

func TestValidTheme(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark, ThemeSystem} {
		if !ValidTheme(theme) {
			t.Errorf("%s should be valid", theme)
		}
	}
	if ValidTheme("neon") {
		t.Error("unexpected theme accepted")
	}
}
