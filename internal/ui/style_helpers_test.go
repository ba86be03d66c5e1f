package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBgStyle_RenderKeepsSpacing(t *testing.T) {
	bg := NewBgStyle("#192330")
	got := bg.Render("Showing  all data.", lipgloss.NewStyle())
	if want := "Showing  all data."; got != want {
		t.Fatalf("Render = %q, want %q (plain profile in tests)", got, want)
	}
	if got := bg.Render("", lipgloss.NewStyle()); got != "" {
		t.Fatalf("Render empty = %q, want empty", got)
	}
}

func TestBgStyle_Join(t *testing.T) {
	bg := NewBgStyle("#192330")
	if got := bg.Join([]string{"a", "b"}, bg.Spaces(2)); got != "a  b" {
		t.Fatalf("Join = %q, want %q", got, "a  b")
	}
}
