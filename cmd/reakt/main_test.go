package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reakt-dev/reakt/internal/errors"
	"github.com/reakt-dev/reakt/pkg/reakt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDefault(t *testing.T) {
	out, err := execute(t, "run", "--config", t.TempDir())
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, want := range []string{
		`<h1 id="title">Hello Reakt Header</h1>`,
		`<h2>Count: 3</h2>`,
		"passes=4 slots=2 effects=4 updates=3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := "demo:\n  clicks: 7\n  title: From YAML\n"
	if err := os.WriteFile(filepath.Join(dir, "reakt.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"config", nil, []string{"From YAML", "Count: 7"}},
		{"flags", []string{"--clicks", "1", "--title", "Flag"}, []string{">Flag<", "Count: 1"}},
		{"zero clicks", []string{"-n", "0"}, []string{"Count: 0", "passes=1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"run", "-c", dir}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("run error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestRunZeroClicksFromConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "reakt.yaml"), []byte("demo:\n  clicks: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "run", "-c", dir)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(out, "Count: 0") || !strings.Contains(out, "passes=1") {
		t.Errorf("demo.clicks: 0 was not honored:\n%s", out)
	}
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "-c", t.TempDir(), "--json", "-n", "2")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	var got struct {
		Tree  json.RawMessage `json:"tree"`
		Stats reakt.Stats     `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Stats.Passes != 3 || got.Stats.StateUpdates != 2 {
		t.Errorf("stats = %+v", got.Stats)
	}
	if !bytes.Contains(got.Tree, []byte(`"Count: 2"`)) {
		t.Errorf("tree missing count: %s", got.Tree)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"bad log level", []string{"--log-level", "loud"}, "E121"},
		{"bad log format", []string{"--log-format", "xml"}, "E120"},
		{"negative clicks", []string{"--clicks=-2"}, "E160"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"run", "-c", t.TempDir()}, tt.args...)
			_, err := execute(t, args...)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}
