package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including kind and widget fields.
	Verbose bool
}

// HandleError logs a WidgetError to stderr.
func (h *LogHandler) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[ttkwidgets error] %s [%s]", err.Op, err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(os.Stderr, " widget=%s", err.Widget)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[ttkwidgets error] %s: %v\n", err.Op, err.Err)
	}
}
