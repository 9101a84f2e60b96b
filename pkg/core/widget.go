package core

// Widget is the capability interface every configurable widget implements.
// WidgetBase provides the canonical implementation; custom widgets embed
// *WidgetBase and add behavior on top.
type Widget interface {
	// Configure applies the given option values.
	Configure(opts Options)
	// Config is an alias for Configure, kept for parity with toolkits that
	// expose both spellings.
	Config(opts Options)
	// CGet returns the current value of a single option.
	CGet(key string) (any, bool)
	// Keys returns the names of all supported options.
	Keys() []string
}

// WidgetBase is the shared base of all configurable widgets. It owns the
// native option store and generic per-instance attribute storage, and routes
// the four core operations through the class-level table so installed hooks
// see every widget uniformly.
type WidgetBase struct {
	kind   string
	native Options
	attrs  map[string]any
}

// NewWidgetBase constructs a widget of the given kind. nativeDefaults seeds
// the native option store; opts carries caller-supplied values, which may
// include options declared by installed hooks. Unknown options are stored as
// native values, matching the permissive behavior of the toolkits this
// library mirrors.
func NewWidgetBase(kind string, nativeDefaults, opts Options) *WidgetBase {
	w := &WidgetBase{
		kind:   kind,
		native: nativeDefaults.Clone(),
		attrs:  make(map[string]any),
	}
	// Hand the table a private copy: hook layers pop their declared options
	// out of it before the terminal Init stores the remainder.
	classOps.Init(w, opts.Clone())
	return w
}

// Kind returns the widget kind name, e.g. "LinkLabel".
func (w *WidgetBase) Kind() string {
	return w.kind
}

// Configure applies the given option values through the class-level table.
func (w *WidgetBase) Configure(opts Options) {
	classOps.Configure(w, opts.Clone())
}

// Config is an alias for Configure.
func (w *WidgetBase) Config(opts Options) {
	w.Configure(opts)
}

// CGet returns the current value of a single option. The second result
// reports whether the option is known to the widget.
func (w *WidgetBase) CGet(key string) (any, bool) {
	return classOps.CGet(w, key)
}

// Keys returns the names of all options the widget currently supports,
// native options first, then options declared by installed hooks.
func (w *WidgetBase) Keys() []string {
	return classOps.Keys(w)
}

// SetAttr stores a per-instance attribute. Attributes are the generic
// instance storage hooks use for their per-registration option stores and
// that widget code may use for attached controllers.
func (w *WidgetBase) SetAttr(name string, value any) {
	w.attrs[name] = value
}

// Attr returns a per-instance attribute. The second result reports whether
// the attribute exists.
func (w *WidgetBase) Attr(name string) (any, bool) {
	value, ok := w.attrs[name]
	return value, ok
}

// HasAttr reports whether a per-instance attribute exists.
func (w *WidgetBase) HasAttr(name string) bool {
	_, ok := w.attrs[name]
	return ok
}
