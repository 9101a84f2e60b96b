package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jason-kane/ttkwidgets/cmd/ttkwidgets/internal/project"
	"github.com/jason-kane/ttkwidgets/cmd/ttkwidgets/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Scaffold a new custom widget",
		Long: `Scaffold a new custom widget source file.

This command creates <widget_name>.go in the target directory with a widget
skeleton that embeds core.WidgetBase and applies themed defaults. The target
directory must be inside a Go module; the package name is derived from the
directory basename, or from the scaffold.package key in ttkwidgets.yaml.

Examples:
  ttkwidgets new SpinBox
  ttkwidgets new SpinBox ./internal/ui`,
		Usage: "ttkwidgets new <WidgetName> [directory]",
		Run:   runNew,
	})
}

// runNew scaffolds a widget file. The first argument is the exported widget
// type name; an optional second argument is the target directory, defaulting
// to the current directory.
func runNew(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("widget name is required\n\nUsage: ttkwidgets new <WidgetName> [directory]")
	}

	name := args[0]
	if err := validateWidgetName(name); err != nil {
		return fmt.Errorf("invalid widget name %q: %w", name, err)
	}

	dir := "."
	if len(args) > 1 {
		dir = filepath.Clean(args[1])
	}

	info, err := project.Resolve(dir)
	if err != nil {
		return err
	}

	out := filepath.Join(dir, snakeCase(name)+".go")
	if _, err := os.Stat(out); err == nil {
		return fmt.Errorf("%s already exists", out)
	}

	src, err := templates.RenderWidget(&templates.WidgetData{
		Package: info.Package,
		Name:    name,
	})
	if err != nil {
		return fmt.Errorf("failed to render widget template: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Created %s (package %s, module %s)\n", out, info.Package, info.ModulePath)
	return nil
}

// validateWidgetName requires an exported Go identifier.
func validateWidgetName(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return fmt.Errorf("must start with an uppercase letter")
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("must contain only letters and digits")
		}
	}
	return nil
}

// snakeCase converts an exported type name to a snake_case file name,
// e.g. "SpinBox" to "spin_box".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
