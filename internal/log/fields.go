package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldHouseholdID = "household_id"
	FieldCategory    = "category"
	FieldCurrency    = "currency"
	FieldFrom        = "from_currency"
	FieldTo          = "to_currency"
	FieldRate        = "rate"
	FieldRecordID    = "record_id"
	FieldNetWorth    = "net_worth"
	FieldSnapshotID  = "snapshot_id"
	FieldToken       = "invitation_token"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentSummary   = "summary"
	ComponentHousehold = "household"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentExport    = "export"
	ComponentRates     = "rates"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpRead      = "read"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpList      = "list"
	OpSummarize = "summarize"
	OpSnapshot  = "snapshot"
	OpExport    = "export"
	OpShutdown  = "shutdown"
	OpStartup   = "startup"
)
