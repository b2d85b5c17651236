package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldKey         = "key"
	FieldDate        = "date"
	FieldServiceType = "service_type"
	FieldMemberCode  = "member_code"
	FieldMemberType  = "member_type"
	FieldFund        = "fund"
	FieldEntries     = "entries"
	FieldStatus      = "status"
	FieldDiscrepancy = "discrepancy"
	FieldCount       = "count"
	FieldPath        = "path"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentRegistry = "registry"
	ComponentSession  = "session"
	ComponentStorage  = "storage"
	ComponentImporter = "importer"
	ComponentReport   = "report"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpList      = "list"
	OpSave      = "save"
	OpLoad      = "load"
	OpImport    = "import"
	OpReconcile = "reconcile"
)
