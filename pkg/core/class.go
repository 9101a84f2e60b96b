package core

// Ops is the class-level operation table shared by every WidgetBase.
// It holds the four core operations a widget exposes: construction,
// configuration, option query, and key enumeration. WidgetBase methods read
// the table at call time, so replacing an entry changes the behavior of
// every existing and future widget.
//
// Package hooks replaces entries with wrappers that delegate to the
// previously installed table, forming a call chain that terminates at the
// toolkit-native operations below.
type Ops struct {
	// Init runs during construction. opts is a private copy the layers may
	// consume destructively; whatever remains when the terminal Init runs is
	// stored as native option state.
	Init func(w *WidgetBase, opts Options)

	// Configure applies a set of option changes to an existing widget.
	// Configure and Config on WidgetBase are two aliases over this entry.
	Configure func(w *WidgetBase, opts Options)

	// CGet returns the current value of a single option. The second result
	// reports whether the option is known.
	CGet func(w *WidgetBase, key string) (any, bool)

	// Keys enumerates the option names the widget currently supports.
	Keys func(w *WidgetBase) []string
}

// classOps is the live operation table. classAttrs is class-level attribute
// storage; hook capsules live here under their registration names.
//
// Both are UI-thread-only shared state, mutated without locking on purpose:
// installs happen at program start, before widgets exist, on the same
// goroutine that runs the event loop.
var (
	classOps   = nativeOps()
	classAttrs = make(map[string]any)
)

// nativeOps returns the toolkit-native terminal implementations.
func nativeOps() Ops {
	return Ops{
		Init: func(w *WidgetBase, opts Options) {
			for name, value := range opts {
				w.native[name] = value
			}
		},
		Configure: func(w *WidgetBase, opts Options) {
			for name, value := range opts {
				w.native[name] = value
			}
		},
		CGet: func(w *WidgetBase, key string) (any, bool) {
			value, ok := w.native[key]
			return value, ok
		},
		Keys: func(w *WidgetBase) []string {
			return w.native.Names()
		},
	}
}

// ClassOps returns the current class-level operation table.
func ClassOps() Ops {
	return classOps
}

// SetClassOps replaces the class-level operation table and returns the
// previous table, so callers can layer on top of it.
func SetClassOps(ops Ops) Ops {
	prev := classOps
	classOps = ops
	return prev
}

// SetClassAttr stores a class-level attribute.
func SetClassAttr(name string, value any) {
	classAttrs[name] = value
}

// ClassAttr returns a class-level attribute. The second result reports
// whether the attribute exists.
func ClassAttr(name string) (any, bool) {
	value, ok := classAttrs[name]
	return value, ok
}

// HasClassAttr reports whether a class-level attribute exists.
func HasClassAttr(name string) bool {
	_, ok := classAttrs[name]
	return ok
}

// ResetClass restores the toolkit-native operation table and clears all
// class-level attributes, discarding every installed hook. Hooks are
// process-lifetime in normal use; this exists so tests can isolate
// themselves from each other.
func ResetClass() {
	classOps = nativeOps()
	classAttrs = make(map[string]any)
}
