package logging

// Standardized field names for structured logging. Keeping these in
// one place makes log output consistent and greppable.
const (
	FieldFile      = "file_path"
	FieldFormat    = "format"
	FieldRow       = "row_index"
	FieldHeaderRow = "header_row"
	FieldReason    = "reason"
	FieldCount     = "count"
	FieldInserted  = "inserted"
	FieldSkipped   = "skipped"
	FieldUser      = "user"
	FieldCategory  = "category"
	FieldDate      = "date"
	FieldAmount    = "amount"
)
