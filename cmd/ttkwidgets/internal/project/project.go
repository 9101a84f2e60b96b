// Package project resolves the Go module a widget file is scaffolded into.
package project

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/jason-kane/ttkwidgets/pkg/errors"
)

// ConfigFile is the optional configuration file name, shared with pkg/theme.
// The CLI only reads the scaffold section.
const ConfigFile = "ttkwidgets.yaml"

// Info describes a resolved scaffold target.
type Info struct {
	// Root is the directory holding go.mod.
	Root string
	// ModulePath is the module path from go.mod.
	ModulePath string
	// Package is the package name for generated files.
	Package string
}

// config mirrors the scaffold section of ttkwidgets.yaml.
type config struct {
	Scaffold struct {
		Package string `yaml:"package,omitempty"`
	} `yaml:"scaffold"`
}

// Resolve locates go.mod at or above dir and derives the module path and
// package name. A ttkwidgets.yaml next to go.mod may override the package
// name for generated files.
func Resolve(dir string) (*Info, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, scaffoldError(err)
	}

	root, data, err := findGoMod(abs)
	if err != nil {
		return nil, err
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return nil, scaffoldError(fmt.Errorf("no module path in %s", filepath.Join(root, "go.mod")))
	}

	cfg, err := loadOptionalConfig(root)
	if err != nil {
		return nil, err
	}

	pkg := strings.TrimSpace(cfg.Scaffold.Package)
	if pkg == "" {
		pkg = defaultPackageName(abs)
	}

	return &Info{Root: root, ModulePath: modulePath, Package: pkg}, nil
}

// findGoMod walks from dir toward the filesystem root looking for go.mod.
func findGoMod(dir string) (string, []byte, error) {
	for {
		path := filepath.Join(dir, "go.mod")
		data, err := os.ReadFile(path)
		if err == nil {
			return dir, data, nil
		}
		if !stderrors.Is(err, os.ErrNotExist) {
			return "", nil, scaffoldError(err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, scaffoldError(fmt.Errorf("no go.mod found at or above %s", dir))
		}
		dir = parent
	}
}

func loadOptionalConfig(root string) (*config, error) {
	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &config{}, nil
		}
		return nil, scaffoldError(fmt.Errorf("failed to read %s: %w", ConfigFile, err))
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, scaffoldError(fmt.Errorf("failed to parse %s: %w", ConfigFile, err))
	}
	return &cfg, nil
}

// defaultPackageName derives a Go package name from the target directory
// basename: lowercased, with separators and other invalid runes dropped.
func defaultPackageName(dir string) string {
	base := strings.ToLower(filepath.Base(dir))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && b.Len() > 0:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "widgets"
	}
	return b.String()
}

func scaffoldError(err error) error {
	return &errors.WidgetError{Op: "project.Resolve", Kind: errors.KindScaffold, Err: err}
}
