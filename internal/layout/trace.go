package layout

import (
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

var logger atomic.Pointer[hclog.Logger]

// SetLogger installs the logger used for pass traces. Pass nil to silence
// tracing again.
func SetLogger(l hclog.Logger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	named := l.Named("layout")
	logger.Store(&named)
}

// tracer returns the installed logger when it traces, or nil.
func tracer() hclog.Logger {
	p := logger.Load()
	if p == nil || !(*p).IsTrace() {
		return nil
	}
	return *p
}

// childLabel names a child in traces.
func childLabel(child Child) string {
	if n, ok := child.(interface{ Name() string }); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("%T", child)
}
