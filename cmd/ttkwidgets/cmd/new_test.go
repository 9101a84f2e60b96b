package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"SpinBox", "spin_box"},
		{"LinkLabel", "link_label"},
		{"Frame", "frame"},
		{"HTTPView", "h_t_t_p_view"},
	}
	for _, tt := range tests {
		if got := snakeCase(tt.in); got != tt.want {
			t.Errorf("snakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateWidgetName(t *testing.T) {
	for _, ok := range []string{"SpinBox", "A", "Widget2"} {
		if err := validateWidgetName(ok); err != nil {
			t.Errorf("validateWidgetName(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "spinBox", "Spin-Box", "Spin Box"} {
		if err := validateWidgetName(bad); err == nil {
			t.Errorf("validateWidgetName(%q) succeeded, want error", bad)
		}
	}
}

func TestRunNewScaffoldsWidgetFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/app\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(root, "ui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := runNew([]string{"SpinBox", dir}); err != nil {
		t.Fatalf("runNew failed: %v", err)
	}

	out := filepath.Join(dir, "spin_box.go")
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}
	if !strings.Contains(string(src), "package ui") || !strings.Contains(string(src), "type SpinBox struct") {
		t.Errorf("unexpected scaffold content:\n%s", src)
	}

	// Refuses to overwrite.
	if err := runNew([]string{"SpinBox", dir}); err == nil {
		t.Error("runNew overwrote an existing file")
	}
}

func TestRunNewRejectsMissingName(t *testing.T) {
	if err := runNew(nil); err == nil {
		t.Error("runNew succeeded without a widget name")
	}
}
