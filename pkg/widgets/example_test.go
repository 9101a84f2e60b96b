package widgets_test

import (
	"fmt"

	"github.com/jason-kane/ttkwidgets/pkg/core"
	"github.com/jason-kane/ttkwidgets/pkg/widgets"
)

// This example enables the tooltip hook and builds a widget carrying a
// tooltip. EnableTooltips is typically called once at program start.
func ExampleEnableTooltips() {
	widgets.EnableTooltips()

	label := widgets.NewLinkLabel(core.Options{
		"text":    "Project home",
		"link":    "https://example.com",
		"tooltip": "Opens the project home page",
	})

	if tip, ok := widgets.TooltipFor(label.WidgetBase); ok {
		fmt.Println(tip.Text())
	}

	core.ResetClass()
	// Output:
	// Opens the project home page
}

// This example overrides a themed option at construction.
func ExampleNewLinkLabel() {
	label := widgets.NewLinkLabel(core.Options{"normalcolor": "#004400"})
	color, _ := label.CGet("normalcolor")
	fmt.Println(color)
	// Output:
	// #004400
}
