package widgets

import (
	"github.com/jason-kane/ttkwidgets/pkg/core"
	"github.com/jason-kane/ttkwidgets/pkg/theme"
)

// KindLinkLabel is the widget kind name for LinkLabel.
const KindLinkLabel = "LinkLabel"

// LinkLabel is a label that behaves like a hyperlink: it tracks hover and
// visited state and reports the color to draw with through CurrentColor.
//
// Native options:
//   - "text":         label text
//   - "link":         the target passed to OnClick
//   - "normalcolor":  hex color for the unvisited, unhovered state
//   - "hovercolor":   hex color while hovered (derived from normalcolor when omitted)
//   - "clickedcolor": hex color once visited (derived from normalcolor when omitted)
type LinkLabel struct {
	*core.WidgetBase

	// OnClick is called with the current "link" option value when the label
	// is clicked.
	OnClick func(link string)

	hovered bool
	visited bool
}

// NewLinkLabel constructs a LinkLabel. Themed defaults for the kind are
// applied first, then opts. Hover and visited colors default to shades
// derived from normalcolor.
func NewLinkLabel(opts core.Options) *LinkLabel {
	merged := theme.Current().Apply(KindLinkLabel, opts)

	defaults := core.Options{
		"text":        "",
		"link":        "",
		"normalcolor": "#0563c1",
	}
	normal, _ := merged["normalcolor"].(string)
	if normal == "" {
		normal = "#0563c1"
	}
	defaults["hovercolor"] = theme.HoverShade(normal)
	defaults["clickedcolor"] = theme.VisitedShade(normal)

	return &LinkLabel{WidgetBase: core.NewWidgetBase(KindLinkLabel, defaults, merged)}
}

// Click marks the label visited and invokes OnClick with the current link.
func (l *LinkLabel) Click() {
	l.visited = true
	if l.OnClick != nil {
		link, _ := l.CGet("link")
		text, _ := link.(string)
		l.OnClick(text)
	}
}

// Enter records that the pointer entered the label.
func (l *LinkLabel) Enter() {
	l.hovered = true
}

// Leave records that the pointer left the label.
func (l *LinkLabel) Leave() {
	l.hovered = false
}

// Visited reports whether the label has been clicked.
func (l *LinkLabel) Visited() bool {
	return l.visited
}

// ResetVisited clears the visited state.
func (l *LinkLabel) ResetVisited() {
	l.visited = false
}

// CurrentColor returns the hex color the label should be drawn with given
// its hover and visited state.
func (l *LinkLabel) CurrentColor() string {
	option := "normalcolor"
	switch {
	case l.hovered:
		option = "hovercolor"
	case l.visited:
		option = "clickedcolor"
	}
	value, _ := l.CGet(option)
	hex, _ := value.(string)
	return hex
}
