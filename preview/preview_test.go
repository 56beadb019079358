package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"ebiten-platformer/config"
	"ebiten-platformer/level"
)

func tinyLevel(t *testing.T) *level.Definition {
	t.Helper()
	lvl, err := level.FromRows([]string{
		"....",
		".#..",
		"####",
	})
	if err != nil {
		t.Fatal(err)
	}
	return &level.Definition{Name: "Tiny", Spawn: level.Point{X: 2, Y: 1}, Level: lvl}
}

func TestRenderPlain(t *testing.T) {
	got := New(nil, config.Default().Palette, true).Render(tinyLevel(t))
	want := "....\n.#@.\n####\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderWithoutColorSupport(t *testing.T) {
	// A renderer on a plain buffer has no color profile, so styles add nothing visible.
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	got := New(r, config.Default().Palette, false).Render(tinyLevel(t))

	if lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n"); len(lines) != 3 {
		t.Fatalf("Render() produced %d lines, want 3", len(lines))
	}
	if !strings.Contains(got, "@") {
		t.Error("spawn marker missing")
	}
	if strings.Count(got, "#") != 5 {
		t.Errorf("ground count = %d, want 5", strings.Count(got, "#"))
	}
}

func TestRenderSpawnOutsideLevel(t *testing.T) {
	def := tinyLevel(t)
	def.Spawn = level.Point{X: 40, Y: 40}
	got := New(nil, config.Default().Palette, true).Render(def)
	if strings.Contains(got, "@") {
		t.Error("spawn outside the level should not be drawn")
	}
}

func TestSummary(t *testing.T) {
	got := Summary(tinyLevel(t))
	want := "Tiny 4x3 spawn (2,1) ground 5 air 7"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
