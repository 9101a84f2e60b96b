package widgets

import (
	"github.com/jason-kane/ttkwidgets/pkg/core"
	"github.com/jason-kane/ttkwidgets/pkg/hooks"
)

// tooltipAttr is the instance attribute the tooltip controller is stored
// under on its owning widget.
const tooltipAttr = "ttkwidgets_tooltip"

// EnableTooltips installs the tooltip hook and returns its registration
// name. After the first call, every widget accepts a "tooltip" option at
// construction and through Configure; a non-empty value attaches a Tooltip
// controller to the widget, and later changes update it in place.
//
// EnableTooltips is idempotent and is meant to be called at program start by
// any package that wants tooltips, before widgets are constructed.
func EnableTooltips() string {
	return hooks.Install(tooltipUpdater, core.Options{"tooltip": ""})
}

// tooltipUpdater is the hook update callback: it keeps each widget's
// attached Tooltip in sync with its "tooltip" option.
func tooltipUpdater(w *core.WidgetBase, _ string, value any) {
	text, _ := value.(string)
	if tip, ok := TooltipFor(w); ok {
		tip.SetText(text)
		return
	}
	w.SetAttr(tooltipAttr, &Tooltip{owner: w, text: text})
}

// TooltipFor returns the Tooltip attached to a widget, if any.
func TooltipFor(w *core.WidgetBase) (*Tooltip, bool) {
	attr, ok := w.Attr(tooltipAttr)
	if !ok {
		return nil, false
	}
	return attr.(*Tooltip), true
}

// Tooltip is the per-widget controller behind the "tooltip" option. It
// tracks the text to show and whether the tip is currently visible; actual
// popup placement is the embedding toolkit's concern.
type Tooltip struct {
	owner   *core.WidgetBase
	text    string
	visible bool
}

// Text returns the tooltip text.
func (t *Tooltip) Text() string {
	return t.text
}

// SetText replaces the tooltip text. Clearing the text hides the tip.
func (t *Tooltip) SetText(text string) {
	t.text = text
	if text == "" {
		t.visible = false
	}
}

// Visible reports whether the tip is showing.
func (t *Tooltip) Visible() bool {
	return t.visible
}

// Enter shows the tip if there is text to show. Call it from the owning
// widget's pointer-enter handler.
func (t *Tooltip) Enter() {
	if t.text != "" {
		t.visible = true
	}
}

// Leave hides the tip.
func (t *Tooltip) Leave() {
	t.visible = false
}
