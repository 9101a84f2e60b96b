package testing

import (
	"testing"

	"github.com/jason-kane/ttkwidgets/pkg/core"
)

// Isolate gives the test a pristine widget class: no installed hooks, no
// class attributes. The class is reset again on cleanup so later tests are
// not affected by hooks this test installs.
func Isolate(t *testing.T) {
	t.Helper()
	core.ResetClass()
	t.Cleanup(core.ResetClass)
}

// UpdateCall records one invocation of a hook update callback.
type UpdateCall struct {
	Widget *core.WidgetBase
	Option string
	Value  any
}

// UpdateRecorder collects hook update callback invocations for assertions.
// Pass its Update method as the UpdateFunc when installing a hook.
type UpdateRecorder struct {
	Calls []UpdateCall
}

// Update records a callback invocation.
func (r *UpdateRecorder) Update(w *core.WidgetBase, option string, value any) {
	r.Calls = append(r.Calls, UpdateCall{Widget: w, Option: option, Value: value})
}

// CallsFor returns the recorded calls for one option, in order.
func (r *UpdateRecorder) CallsFor(option string) []UpdateCall {
	var calls []UpdateCall
	for _, c := range r.Calls {
		if c.Option == option {
			calls = append(calls, c)
		}
	}
	return calls
}

// Values returns the recorded values for one option, in order.
func (r *UpdateRecorder) Values(option string) []any {
	var values []any
	for _, c := range r.CallsFor(option) {
		values = append(values, c.Value)
	}
	return values
}

// Reset discards all recorded calls.
func (r *UpdateRecorder) Reset() {
	r.Calls = nil
}
