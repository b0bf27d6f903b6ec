package logging

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"

	// Session record fields
	FieldIndex       = "index"
	FieldSessionID   = "session_id"
	FieldDate        = "date"
	FieldSessionType = "session_type"

	// Store fields
	FieldPath = "path"
)
