// Package templates provides embedded template files for widget scaffolding.
package templates

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed widget.go.tmpl
var fs embed.FS

// WidgetData contains the data for widget template substitution.
type WidgetData struct {
	// Package is the Go package name of the generated file.
	Package string
	// Name is the exported widget type name, e.g. "SpinBox".
	Name string
}

// RenderWidget renders the widget skeleton for the given data.
func RenderWidget(data *WidgetData) ([]byte, error) {
	t, err := template.ParseFS(fs, "widget.go.tmpl")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
