// Package widgets provides the custom widgets this library adds on top of
// the core configurable widget model.
//
// Widgets are long-lived mutable objects created with NewX constructors that
// take a core.Options map:
//
//	label := widgets.NewLinkLabel(core.Options{
//	    "text": "Project home",
//	    "link": "https://example.com",
//	})
//
// Constructors consult the current theme (pkg/theme) for per-kind defaults
// before applying caller options, so applications can restyle widget kinds
// globally.
//
// The package also hosts the tooltip hook (see EnableTooltips), the
// practical consumer of the option hook mechanism in pkg/hooks: once
// enabled, every widget accepts a "tooltip" option at construction and
// through Configure.
package widgets
