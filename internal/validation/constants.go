package validation

// Error messages
const (
	ErrMsgLoadSchema    = "failed to load schema %s: %w"
	ErrMsgReadSchema    = "failed to read schema file: %w"
	ErrMsgParseSchema   = "failed to parse schema JSON: %w"
	ErrMsgAddResource   = "failed to add schema resource: %w"
	ErrMsgCompileSchema = "failed to compile schema: %w"
	ErrMsgParseData     = "failed to parse JSON data: %w"
	ErrMsgValidation    = "validation error: %w"
	ErrMsgSchemaFailed  = "schema validation failed"
)
