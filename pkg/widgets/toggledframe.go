package widgets

import (
	"github.com/jason-kane/ttkwidgets/pkg/assets"
	"github.com/jason-kane/ttkwidgets/pkg/core"
	"github.com/jason-kane/ttkwidgets/pkg/theme"
)

// KindToggledFrame is the widget kind name for ToggledFrame.
const KindToggledFrame = "ToggledFrame"

// ToggledFrame is a frame that can be opened and closed with a toggle
// button. The indicator glyph comes from pkg/assets.
//
// Native options:
//   - "text":  title shown on the toggle button
//   - "width": toggle button width in characters
type ToggledFrame struct {
	*core.WidgetBase

	// OnToggle is called after the open state changes.
	OnToggle func(open bool)

	open bool
}

// NewToggledFrame constructs a ToggledFrame. The frame starts closed.
func NewToggledFrame(opts core.Options) *ToggledFrame {
	merged := theme.Current().Apply(KindToggledFrame, opts)
	defaults := core.Options{
		"text":  "",
		"width": 20,
	}
	return &ToggledFrame{WidgetBase: core.NewWidgetBase(KindToggledFrame, defaults, merged)}
}

// IsOpen reports whether the frame content is shown.
func (f *ToggledFrame) IsOpen() bool {
	return f.open
}

// Toggle flips the open state and returns the new state.
func (f *ToggledFrame) Toggle() bool {
	f.setOpen(!f.open)
	return f.open
}

// Open shows the frame content.
func (f *ToggledFrame) Open() {
	f.setOpen(true)
}

// Close hides the frame content.
func (f *ToggledFrame) Close() {
	f.setOpen(false)
}

func (f *ToggledFrame) setOpen(open bool) {
	if f.open == open {
		return
	}
	f.open = open
	if f.OnToggle != nil {
		f.OnToggle(open)
	}
}

// Indicator returns the toggle button glyph for the current state.
func (f *ToggledFrame) Indicator() *assets.Bitmap {
	if f.open {
		return assets.ButtonCollapse
	}
	return assets.ButtonExpand
}
