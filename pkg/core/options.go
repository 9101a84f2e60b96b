package core

import "sort"

// Options maps option names to their values. It is the configuration
// currency of the library: widget constructors, Configure, and hook
// registrations all speak Options.
//
// A nil Options behaves like an empty one for reads; use make or a literal
// before writing.
type Options map[string]any

// Clone returns an independent shallow copy. Cloning nil returns an empty,
// writable Options.
func (o Options) Clone() Options {
	dst := make(Options, len(o))
	for name, value := range o {
		dst[name] = value
	}
	return dst
}

// Pop removes name and returns its value. The second result reports whether
// the option was present.
func (o Options) Pop(name string) (any, bool) {
	value, ok := o[name]
	if ok {
		delete(o, name)
	}
	return value, ok
}

// PopDefault removes name and returns its value, or fallback if the option
// is not present.
func (o Options) PopDefault(name string, fallback any) any {
	if value, ok := o.Pop(name); ok {
		return value
	}
	return fallback
}

// Merge returns a new Options holding o overlaid with overrides. Neither
// receiver nor argument is modified.
func (o Options) Merge(overrides Options) Options {
	dst := o.Clone()
	for name, value := range overrides {
		dst[name] = value
	}
	return dst
}

// Names returns the option names in sorted order.
func (o Options) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
