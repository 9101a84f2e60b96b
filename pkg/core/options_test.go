package core

import (
	"reflect"
	"testing"
)

func TestOptionsCloneIsIndependent(t *testing.T) {
	src := Options{"text": "a", "width": 10}
	dst := src.Clone()
	dst["text"] = "b"
	if src["text"] != "a" {
		t.Errorf("clone write leaked into source: %v", src)
	}
}

func TestOptionsCloneNil(t *testing.T) {
	var o Options
	c := o.Clone()
	if c == nil {
		t.Fatal("Clone of nil returned nil")
	}
	c["x"] = 1 // must be writable
}

func TestOptionsPop(t *testing.T) {
	o := Options{"text": "a"}
	v, ok := o.Pop("text")
	if !ok || v != "a" {
		t.Errorf("Pop = %v, %v; want a, true", v, ok)
	}
	if _, present := o["text"]; present {
		t.Error("Pop did not remove the option")
	}
	if _, ok := o.Pop("text"); ok {
		t.Error("second Pop reported present")
	}
}

func TestOptionsPopDefault(t *testing.T) {
	o := Options{"text": "a"}
	if got := o.PopDefault("text", "z"); got != "a" {
		t.Errorf("PopDefault(present) = %v, want a", got)
	}
	if got := o.PopDefault("text", "z"); got != "z" {
		t.Errorf("PopDefault(absent) = %v, want z", got)
	}
}

func TestOptionsMerge(t *testing.T) {
	base := Options{"text": "a", "width": 10}
	got := base.Merge(Options{"text": "b", "link": "x"})
	want := Options{"text": "b", "width": 10, "link": "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
	if base["text"] != "a" {
		t.Error("Merge modified the receiver")
	}
}

func TestOptionsNamesSorted(t *testing.T) {
	o := Options{"c": 1, "a": 2, "b": 3}
	got := o.Names()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}
