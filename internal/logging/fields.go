package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldRoot   = "root"
	FieldDir    = "dir"
	FieldOutput = "output"
	FieldConfig = "config"
	FieldFormat = "format"

	// Run fields.
	FieldSuite      = "suite"
	FieldExtensions = "extensions"
	FieldExcluded   = "excluded"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesUnreadable = "files_unreadable"
	FieldPackages        = "packages"
	FieldErrorsTotal     = "errors_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldScope       = "scope"
	FieldEnabled     = "enabled"
)
