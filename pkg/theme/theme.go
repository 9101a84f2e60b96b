// Package theme provides per-widget option defaults and color utilities.
//
// A Theme maps widget kind names to default Options. Widget constructors
// consult the current theme before applying caller-supplied options, so an
// application can restyle every LinkLabel or ToggledFrame in one place,
// either in code or through an optional ttkwidgets.yaml file:
//
//	defaults:
//	  LinkLabel:
//	    normalcolor: "#0563c1"
//	  ToggledFrame:
//	    width: 25
package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jason-kane/ttkwidgets/pkg/core"
	"github.com/jason-kane/ttkwidgets/pkg/errors"
)

// ConfigFile is the optional theme configuration file name.
const ConfigFile = "ttkwidgets.yaml"

// Theme holds per-widget-kind option defaults.
type Theme struct {
	// Defaults maps widget kind (e.g. "LinkLabel") to default options.
	Defaults map[string]core.Options `yaml:"defaults"`
}

// current is the active theme. UI-thread-only, like the rest of the
// widget-facing globals.
var current = &Theme{}

// Current returns the active theme.
func Current() *Theme {
	return current
}

// Set replaces the active theme and returns the previous one. Passing nil
// restores an empty theme.
func Set(t *Theme) *Theme {
	prev := current
	if t == nil {
		t = &Theme{}
	}
	current = t
	return prev
}

// LoadOptional reads ttkwidgets.yaml from dir if present. A missing file is
// not an error and yields an empty theme.
func LoadOptional(dir string) (*Theme, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Theme{}, nil
		}
		return nil, &errors.WidgetError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", ConfigFile, err),
		}
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &errors.WidgetError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", ConfigFile, err),
		}
	}
	return &t, nil
}

// For returns a copy of the defaults for the given widget kind.
func (t *Theme) For(kind string) core.Options {
	return t.Defaults[kind].Clone()
}

// Apply overlays caller-supplied options on the kind's themed defaults and
// returns the result. Neither input is modified.
func (t *Theme) Apply(kind string, opts core.Options) core.Options {
	return t.For(kind).Merge(opts)
}
