package calmid

import (
	"fmt"

	"github.com/streamlearn/calmid/core"
)

// ErrInvalidConfiguration is re-exported from core so callers can
// errors.Is against it without importing core directly.
var ErrInvalidConfiguration = core.ErrInvalidConfiguration

// invalidConfig wraps core.ErrInvalidConfiguration with a reason, so
// callers can still errors.Is against the sentinel while getting a
// human-readable cause.
func invalidConfig(reason string) error {
	return fmt.Errorf("calmid: %s: %w", reason, core.ErrInvalidConfiguration)
}
