package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldRequestID = "request_id"

	FieldSource   = "source"
	FieldReportID = "report_id"
	FieldFormat   = "format"
	FieldOutput   = "output"

	FieldLines    = "lines"
	FieldRecords  = "records"
	FieldGroups   = "groups"
	FieldDuration = "duration"

	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
)
