package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ebiten-platformer/generation"
	"ebiten-platformer/level"
)

// runCLI executes the root command with args and returns what it printed
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag values live in package variables and survive between runs
	flagLogLevel = "info"
	flagLevel, flagConfig, flagTrace = "", "", ""
	flagFullscreen, flagPlain = false, false
	flagGenWidth, flagGenHeight, flagGenSeed = 98, 22, 0
	flagGenName, flagGenOutput = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGeneratePrintsLoadableLevel(t *testing.T) {
	args := []string{"generate", "--seed", "1", "--width", "20", "--height", "10", "--name", "Hills"}
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	def, err := level.Parse([]byte(out))
	if err != nil {
		t.Fatalf("generated YAML does not parse: %v\n%s", err, out)
	}
	if def.Name != "Hills" || def.Level.Width() != 20 || def.Level.Height() != 10 {
		t.Errorf("generated %s %dx%d, want Hills 20x10", def.Name, def.Level.Width(), def.Level.Height())
	}

	again, err := runCLI(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	if again != out {
		t.Error("same seed produced a different level")
	}
}

func TestGenerateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	out, err := runCLI(t, "generate", "--seed", "7", "--width", "16", "--height", "8", "-o", path)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	def, err := level.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !strings.HasPrefix(out, "generated 16x8 spawn") {
		t.Errorf("summary = %q", out)
	}
	if def.Name != "generated" {
		t.Errorf("Name = %q, want generated", def.Name)
	}
}

func TestGenerateRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"too narrow", []string{"generate", "--width", "3"}, generation.ErrTooSmall},
		{"too tall", []string{"generate", "--height", "100000"}, generation.ErrTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := runCLI(t, tc.args...); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLevelsListsDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("cave.yaml", "name: Cave\nrows: [\"...\", \"###\"]\n")
	write("broken.yaml", "name: Broken\nrows: [\"...\", \"#\"]\n")

	out, err := runCLI(t, "levels", dir)
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	if !strings.Contains(out, "built-in: Overworld 98x22") {
		t.Errorf("built-in level missing from:\n%s", out)
	}
	if !strings.Contains(out, filepath.Join(dir, "cave.yaml")+": Cave 3x2") {
		t.Errorf("cave.yaml missing from:\n%s", out)
	}
	if strings.Contains(out, "Broken") {
		t.Errorf("broken level listed:\n%s", out)
	}
}

func TestLevelsMissingDirectory(t *testing.T) {
	if _, err := runCLI(t, "levels", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("levels on a missing directory returned nil error")
	}
}

func TestPreviewPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	body := "name: Tiny\nspawn: {x: 1, y: 0}\nrows: [\"...\", \"###\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "preview", "--plain", "--level", path)
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}
	want := "Tiny 3x2 spawn (1,0) ground 3 air 3\n.@.\n###\n"
	if out != want {
		t.Errorf("preview =\n%q\nwant\n%q", out, want)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := runCLI(t, "--log-level", "loud", "levels"); err == nil {
		t.Error("unknown --log-level accepted")
	}
}
