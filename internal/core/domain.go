package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Lent     DebtType = "lent"     // counterparty owes the user
	Borrowed DebtType = "borrowed" // user owes the counterparty
)

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type (
	DebtType string

	Theme string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Category struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Color     string `json:"color"`
		Budget    *Money `json:"budget,omitempty"` // monthly limit, nil when unset
		IsDefault bool   `json:"isDefault,omitempty"`
	}

	Expense struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Amount      Money  `json:"amount"`
		Date        Date   `json:"date"`
		CategoryID  string `json:"categoryId"` // may dangle after category deletion
	}

	Debt struct {
		ID         string   `json:"id"`
		PersonName string   `json:"personName"`
		Amount     Money    `json:"amount"`
		Type       DebtType `json:"type"`
		Date       Date     `json:"date"`
		Settled    bool     `json:"isSettled"`
		Notes      string   `json:"notes,omitempty"`
	}

	User struct {
		Active bool   `json:"active"`
		Name   string `json:"name,omitempty"`
		Email  string `json:"email,omitempty"`
	}
)

var (
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrEmptyDescription     = errors.New("empty description")
	ErrEmptyPersonName      = errors.New("empty person name")
	ErrInvalidDebtType      = errors.New("invalid debt type")
	ErrEmptyCategoryName    = errors.New("empty category name")
	ErrEmptyIdentifier      = errors.New("empty identifier")
	ErrDefaultCategory      = errors.New("default category cannot be deleted")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNotFound             = errors.New("not found")
)

// MonthNames indexes English month names by time.Month-1.
var MonthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DefaultCategories returns a fresh copy of the seed category set used on
// first run and on category reset.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat_food", Name: "Food & Dining", Color: "#ef4444", IsDefault: true},
		{ID: "cat_transport", Name: "Transportation", Color: "#f97316", IsDefault: true},
		{ID: "cat_utilities", Name: "Utilities", Color: "#eab308", IsDefault: true},
		{ID: "cat_entertainment", Name: "Entertainment", Color: "#8b5cf6", IsDefault: true},
		{ID: "cat_shopping", Name: "Shopping", Color: "#ec4899", IsDefault: true},
		{ID: "cat_health", Name: "Health", Color: "#06b6d4", IsDefault: true},
		{ID: "cat_housing", Name: "Housing", Color: "#3b82f6", IsDefault: true},
		{ID: "cat_other", Name: "Other", Color: "#64748b", IsDefault: true},
	}
}

// NewDate creates a Date from year, month, day at day granularity.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// SameMonth reports whether both dates fall in the same calendar month and
// year. Dates are naive day values, no timezone normalization applies.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return e.Amount.Validate()
}

func (d Debt) Validate() error {
	if err := d.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(d.PersonName)) == 0 {
		return ErrEmptyPersonName
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	switch d.Type {
	case Lent, Borrowed:
		return nil
	default:
		return ErrInvalidDebtType
	}
}

func (c Category) Validate() error {
	if len(strings.TrimSpace(c.Name)) == 0 {
		return ErrEmptyCategoryName
	}
	if c.Budget != nil && c.Budget.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidTheme reports whether s is one of the supported theme values.
func ValidTheme(s Theme) bool {
	switch s {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
