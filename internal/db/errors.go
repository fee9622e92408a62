package db

// Op constants name the failed backend command for error context.
const (
	OpPing    = "PING"
	OpScan    = "SCAN"
	OpJSONGet = "JSON.GET"
	OpSelect  = "SELECT"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
