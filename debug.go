package pinchzoom

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug output. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugf prints a diagnostic line when the Zoomer runs in debug mode.
func (z *Zoomer) debugf(format string, args ...any) {
	if !z.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[pinchzoom] "+format+"\n", args...)
}

// SetDebugMode enables or disables diagnostic output on stderr.
func (z *Zoomer) SetDebugMode(enabled bool) {
	z.cfg.Debug = enabled
}
