package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunDefaults(t *testing.T) {
	out := &bytes.Buffer{}
	if err := run(nil, out); err != nil {
		t.Fatal(err)
	}
	want := "first: (0,0)-(398,400)\nsecond: (403,0)-(800,400)\nproportion: 0.5000\n"
	if out.String() != want {
		t.Fatalf("%q", out.String())
	}
}

func TestRunOneChild(t *testing.T) {
	out := &bytes.Buffer{}
	if err := run([]string{"-children", "1-", "-at", "10,10"}, out); err != nil {
		t.Fatal(err)
	}
	want := "first: (10,10)-(810,410)\nproportion: 0.5000\n"
	if out.String() != want {
		t.Fatalf("%q", out.String())
	}
}

func TestRunSecondOnly(t *testing.T) {
	out := &bytes.Buffer{}
	if err := run([]string{"-children", "-1"}, out); err != nil {
		t.Fatal(err)
	}
	want := "second: (0,0)-(800,400)\nproportion: 0.5000\n"
	if out.String() != want {
		t.Fatalf("%q", out.String())
	}
}

func TestRunNoChildren(t *testing.T) {
	out := &bytes.Buffer{}
	if err := run([]string{"-children", "--"}, out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "proportion: 0.5000\n" {
		t.Fatalf("%q", out.String())
	}
}

func TestRunSession(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "s.yaml")
	data := `sessions:
  - name: other
    orientation: horizontal
    sizeMode: proportional
    proportion: 0.2
    handleSize: 5
  - name: bottom
    orientation: vertical
    sizeMode: lock-second
    proportion: 0.5
    secondChildSize: 100
    handleSize: 5
`
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	args := []string{"-session", filename, "-name", "bottom", "-size", "800x400"}
	if err := run(args, out); err != nil {
		t.Fatal(err)
	}
	want := "first: (0,0)-(800,295)\nsecond: (0,300)-(800,400)\nproportion: 0.7468\n"
	if out.String() != want {
		t.Fatalf("%q", out.String())
	}

	if err := run([]string{"-session", filename, "-name", "none"}, out); err == nil {
		t.Fatal("expecting error")
	}
}

func TestParseOptionsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-size", "800"},
		{"-size", "ax400"},
		{"-at", "1;2"},
		{"-children", "12"},
		{"-children", "111"},
		{"-watch"},
	} {
		if _, err := parseOptions(args, &bytes.Buffer{}); err == nil {
			t.Fatal(args)
		}
	}
}
