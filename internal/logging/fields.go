package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldScript    = "script"
	FieldRange     = "range"
	FieldPairs     = "pairs"
	FieldMappings  = "mappings"
	FieldDryRun    = "dry_run"
	FieldBackup    = "backup"
	FieldJobs      = "jobs"
	FieldLanguage  = "language"
	FieldBytes     = "bytes"
	FieldReplaced  = "replaced"
	FieldUnused    = "unused"
	FieldRemaining = "remaining"
	FieldComplete  = "complete"
	FieldWritten   = "written"

	// Mapping table fields. Pair positions are 1-based.
	FieldPair        = "pair"
	FieldFrom        = "from"
	FieldTo          = "to"
	FieldEarlier     = "earlier"
	FieldEarlierFrom = "earlier_from"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
