package planning

import (
	"fmt"
	"strings"

	"github.com/magliflex/planner/pkg/domain/services/bomcheck"
)

// ShortageError reports insufficient raw-material stock for a lot. It is a
// warning gate: callers are expected to resubmit with Override set after
// explicit confirmation rather than treat it as fatal.
type ShortageError struct {
	Shortages []bomcheck.Shortage
}

// Error implements the error interface
func (e *ShortageError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s %s of %s (short %s)",
			s.Required, s.Unit, s.MaterialName, s.Deficit))
	}
	return "insufficient raw material: " + strings.Join(parts, ", ")
}
