package cli

// Exit codes used by the pinlock binary.
const (
	ExitFailure    = 1
	ExitUsage      = 2
	ExitValidation = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
