// Package errors provides structured error handling for the ttkwidgets library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration file error.
	KindConfig
	// KindAsset indicates a bitmap asset error.
	KindAsset
	// KindOption indicates a widget option error.
	KindOption
	// KindScaffold indicates a code scaffolding error.
	KindScaffold
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAsset:
		return "asset"
	case KindOption:
		return "option"
	case KindScaffold:
		return "scaffold"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error in the ttkwidgets library.
type WidgetError struct {
	// Op is the operation that failed (e.g., "theme.LoadOptional").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the widget kind involved, if applicable.
	Widget string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WidgetError)
}
