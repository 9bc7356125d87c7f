package registry

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Get when no record carries the requested
// name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dependency %q is not registered", e.Name)
}

// Issue describes a single structural violation found by Validate.
type Issue struct {
	// Name is the name of the offending record. May be empty when the
	// violation is a missing name.
	Name string
	// Reason is a human-readable description of the violation.
	Reason string
}

func (i Issue) String() string {
	if i.Name == "" {
		return i.Reason
	}
	return fmt.Sprintf("dependency %q: %s", i.Name, i.Reason)
}

// ValidationError carries every structural violation found in one
// validation pass.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("registry validation failed:\n- %s", strings.Join(lines, "\n- "))
}
