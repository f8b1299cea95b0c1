package db

// Op names a database operation for error context.
const (
	OpOpen    = "OPEN"
	OpPragma  = "PRAGMA"
	OpMigrate = "MIGRATE"
	OpPing    = "PING"
	OpQuery   = "QUERY"
	OpExec    = "EXEC"
	OpScan    = "SCAN"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
