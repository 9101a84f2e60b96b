// Package testing provides helpers for testing widgets and option hooks.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	ttktest "github.com/jason-kane/ttkwidgets/pkg/testing"
package testing
