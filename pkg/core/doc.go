// Package core provides the configurable widget model that the rest of the
// library builds on.
//
// This package defines the foundational types for option-configurable
// widgets: Options, Widget, and WidgetBase. It follows the classic desktop
// toolkit model where a widget is a long-lived, mutable object constructed
// once and then reconfigured through named options.
//
// # Core Types
//
// Options is a plain mapping from option name to value. Widgets receive an
// Options value at construction and through Configure.
//
// WidgetBase is the shared base every widget embeds. It routes the four core
// operations (construction, configuration, option query, key enumeration)
// through a class-level operation table, so behavior installed on the table
// applies to every widget in the process. That property is what lets option
// hooking (see package hooks) work without touching individual widget types.
//
// # Constructor Conventions
//
// Widgets are long-lived mutable objects and use NewX() constructors
// returning pointers:
//
//	label := widgets.NewLinkLabel(core.Options{"text": "Docs", "link": "https://example.com"})
//	label.Configure(core.Options{"text": "Documentation"})
//
// # Threading
//
// The class-level operation table and attribute stores are NOT thread-safe.
// They must only be accessed from the UI thread, matching the single-threaded
// event-loop model of the toolkits this library targets. Install hooks and
// construct widgets from the same goroutine.
package core
