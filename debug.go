package radial

import (
	"fmt"
	"os"
)

// debugf prints a state-transition message to stderr when debug mode is on.
func (m *Menu) debugf(format string, args ...any) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[radial] "+format+"\n", args...)
}
