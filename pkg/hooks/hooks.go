// Package hooks retrofits extra named options onto every widget built on
// core.WidgetBase, without modifying any widget type.
//
// A hook is installed once, usually at program start, with a set of option
// defaults and an update callback:
//
//	hooks.Install(func(w *core.WidgetBase, option string, value any) {
//	    // react to the new value
//	}, core.Options{"tooltip": ""})
//
// From then on every widget accepts the declared options at construction and
// through Configure, answers CGet for them, and lists them in Keys. The
// callback fires only when a value actually changes, and during construction
// only after the underlying widget initialization has completed.
//
// Installation works by capturing the current class-level operation table
// into an immutable capsule and replacing the table with wrappers that
// delegate to the capsule. Multiple hooks therefore stack: the most recently
// installed registration is the outermost layer, and each layer delegates to
// the table it captured, terminating at the toolkit-native operations. No
// ordering is promised between independent registrations beyond that chain.
//
// There is no uninstall; a registration lives for the rest of the process.
package hooks

import (
	"reflect"
	"strings"

	"github.com/jason-kane/ttkwidgets/pkg/core"
)

// UpdateFunc is called when a declared option takes a new value on a widget.
type UpdateFunc func(w *core.WidgetBase, option string, value any)

// RegistrationName computes the deterministic identifier for a hook from the
// sorted names of its declared options. Two defaults maps with the same
// option names produce the same name regardless of their default values.
func RegistrationName(defaults core.Options) string {
	return "WidgetHook_" + strings.Join(defaults.Names(), "_")
}

// IsHooked reports whether a registration for exactly this option-name set
// is already installed.
func IsHooked(defaults core.Options) bool {
	return core.HasClassAttr(RegistrationName(defaults))
}

// Install registers a hook declaring the options in defaults and returns the
// registration name. Installing a second time with the same option-name set
// is a no-op that returns the existing registration's name, so independent
// widget packages can each require the same option safely.
//
// defaults must be non-empty; every declared option needs a default value.
// Install must run on the UI thread, before widgets that should carry the
// options are constructed.
func Install(update UpdateFunc, defaults core.Options) string {
	if len(defaults) == 0 {
		panic("hooks: Install requires at least one option")
	}

	name := RegistrationName(defaults)
	if core.HasClassAttr(name) {
		return name
	}

	declared := defaults.Clone()
	storeKey := strings.ToLower(name)

	// Capsule: the operation table as it exists right now. Stored under the
	// registration name both as the idempotency marker and so the wrappers
	// below can delegate to the pre-hook behavior.
	orig := core.ClassOps()
	core.SetClassAttr(name, orig)

	// store returns the widget's per-registration option store, creating it
	// seeded with the defaults on first touch.
	store := func(w *core.WidgetBase) core.Options {
		if attr, ok := w.Attr(storeKey); ok {
			return attr.(core.Options)
		}
		s := declared.Clone()
		w.SetAttr(storeKey, s)
		return s
	}

	// set stores value and notifies the updater, but only when the value
	// actually changed.
	set := func(w *core.WidgetBase, option string, value any) {
		s := store(w)
		current, ok := s[option]
		if ok && equalValues(current, value) {
			return
		}
		s[option] = value
		update(w, option, value)
	}

	core.SetClassOps(core.Ops{
		Init: func(w *core.WidgetBase, opts core.Options) {
			// Pop the declared options out before the rest of the chain runs,
			// falling back to defaults for anything the caller omitted.
			values := make(core.Options, len(declared))
			for option, def := range declared {
				values[option] = opts.PopDefault(option, def)
			}
			orig.Init(w, opts)
			// The store starts at the defaults, so applying the chosen values
			// through set fires the updater exactly for the options that
			// differ, and only now that the widget exists.
			w.SetAttr(storeKey, declared.Clone())
			for _, option := range values.Names() {
				set(w, option, values[option])
			}
		},
		Configure: func(w *core.WidgetBase, opts core.Options) {
			for _, option := range declared.Names() {
				if value, ok := opts.Pop(option); ok {
					set(w, option, value)
				}
			}
			orig.Configure(w, opts)
		},
		CGet: func(w *core.WidgetBase, key string) (any, bool) {
			if _, ok := declared[key]; ok {
				value, ok := store(w)[key]
				return value, ok
			}
			return orig.CGet(w, key)
		},
		Keys: func(w *core.WidgetBase) []string {
			return append(orig.Keys(w), declared.Names()...)
		},
	})

	return name
}

// equalValues compares option values without panicking on uncomparable
// dynamic types.
func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
