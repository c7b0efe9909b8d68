package app

import (
	"fmt"
	"strings"
)

// ConflictingFlagsError reports that more than one exclusive output mode was
// selected.
type ConflictingFlagsError struct {
	Flags []string
}

// Error implements the error interface for ConflictingFlagsError.
func (e *ConflictingFlagsError) Error() string {
	return fmt.Sprintf("conflicting output options: %s are mutually exclusive", strings.Join(e.Flags, ", "))
}
