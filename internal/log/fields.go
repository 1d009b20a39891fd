package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldExpenseID   = "expense_id"
	FieldDebtID      = "debt_id"
	FieldCategoryID  = "category_id"
	FieldDescription = "description"
	FieldAmountCents = "amount_cents"
	FieldBlobKey     = "blob_key"
)

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentExpense  = "expense"
	ComponentCategory = "category"
	ComponentDebt     = "debt"
	ComponentSession  = "session"
	ComponentInsight  = "insight"
	ComponentStorage  = "storage"
	ComponentEvents   = "events"
	ComponentOracle   = "oracle"
)
