package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
)

func TestDetectMode(t *testing.T) {
	var buf bytes.Buffer
	noEnv := func(string) string { return "" }
	tests := []struct {
		format Format
		want   OutputMode
	}{
		{FormatJSON, OutputModeJSON},
		{FormatPlain, OutputModePlain},
		{FormatTerminal, OutputModePlain},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := detectMode(&buf, tt.format, noEnv); got != tt.want {
				t.Errorf("detectMode(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestDetectModeNoColor(t *testing.T) {
	env := func(k string) string {
		if k == "NO_COLOR" {
			return "1"
		}
		return ""
	}
	if got := detectMode(os.Stdout, FormatTerminal, env); got != OutputModePlain {
		t.Errorf("NO_COLOR: got %v, want plain", got)
	}
	if got := detectMode(os.Stdout, FormatJSON, env); got != OutputModeJSON {
		t.Errorf("NO_COLOR with json: got %v, want json", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{" JSON ", FormatJSON, false},
		{"plain", FormatPlain, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWarnPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, "terminal")
	u.Warn("assessment %s failed", "x")
	if got := errOut.String(); got != "WARN: assessment x failed\n" {
		t.Errorf("Warn wrote %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("Warn wrote to stdout: %q", out.String())
	}
}

func TestForResult(t *testing.T) {
	s := NewStyles(false)
	tests := []struct {
		res  assessments.Result
		icon string
	}{
		{assessments.Result{Status: assessments.Scored, Rating: assessments.Good}, "GOOD"},
		{assessments.Result{Status: assessments.Scored, Rating: assessments.OK}, "OK"},
		{assessments.Result{Status: assessments.Scored, Rating: assessments.Bad}, "BAD"},
		{assessments.Result{Status: assessments.Scored, Rating: assessments.Feedback}, "NOTE"},
		{assessments.Result{Status: assessments.Skipped}, "SKIP"},
		{assessments.Result{Status: assessments.Failed}, "WARN:"},
	}
	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			if _, icon := s.ForResult(tt.res); icon != tt.icon {
				t.Errorf("ForResult(%+v) icon = %q, want %q", tt.res, icon, tt.icon)
			}
		})
	}
}

func sampleReports() []*analysis.Report {
	return []*analysis.Report{{
		ID:                  "home.md",
		Language:            "en",
		ReadabilityScore:    78,
		HasReadabilityScore: true,
		Results: []assessments.Result{
			{ID: "passive-voice", Category: assessments.Readability, Status: assessments.Scored, Rating: assessments.Bad, Score: 3,
				Evidence: []assessments.Evidence{{Sentence: "It was done."}, {Sentence: "It was seen."}}},
			{ID: "flesch-reading-ease", Category: assessments.Readability, Status: assessments.Skipped, Missing: []string{"helper:fleschReadingScore"}},
			{ID: "text-length", Category: assessments.SEO, Status: assessments.Scored, Rating: assessments.Good, Score: 9},
		},
	}}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ExplorerModel, keys ...string) ExplorerModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(ExplorerModel)
	}
	return m
}

func TestExplorerTree(t *testing.T) {
	m := NewExplorerModel(sampleReports())

	// A single document starts expanded: doc, readability, passive-voice, seo, text-length.
	visible := m.Visible()
	if len(visible) != 5 {
		t.Fatalf("visible rows = %d, want 5", len(visible))
	}
	kinds := []NodeKind{NodeDocument, NodeCategory, NodeResult, NodeCategory, NodeResult}
	for i, k := range kinds {
		if visible[i].Kind != k {
			t.Errorf("row %d kind = %v, want %v", i, visible[i].Kind, k)
		}
	}

	// Expand the passive voice result to show its evidence.
	m = press(m, "down", "down", "right")
	if got := m.Selected().Result.ID; got != "passive-voice" {
		t.Fatalf("selected %q", got)
	}
	if len(m.Visible()) != 7 {
		t.Errorf("visible rows after expand = %d, want 7", len(m.Visible()))
	}

	// Left on an expanded row collapses it; again moves to the parent.
	m = press(m, "left")
	if len(m.Visible()) != 5 {
		t.Errorf("visible rows after collapse = %d, want 5", len(m.Visible()))
	}
	m = press(m, "left")
	if m.Selected().Kind != NodeCategory {
		t.Errorf("selected kind = %v, want category", m.Selected().Kind)
	}

	// Skipped results are hidden until toggled.
	m = press(m, "s")
	if len(m.Visible()) != 6 {
		t.Errorf("visible rows with skipped = %d, want 6", len(m.Visible()))
	}
}

func TestExplorerView(t *testing.T) {
	m := NewExplorerModel(sampleReports())
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	view := next.(ExplorerModel).View()
	for _, want := range []string{"home.md", "passive-voice", "text-length", "readability 78"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorerModel(sampleReports())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestProgressModel(t *testing.T) {
	var m tea.Model = NewModel()
	m, _ = m.Update(StageMsg(StageAnalyze))
	m, _ = m.Update(PaperCountMsg(4))
	m, _ = m.Update(PaperDoneMsg{})
	if view := m.View(); !strings.Contains(view, "Analyzing 1/4 papers") {
		t.Errorf("View = %q", view)
	}

	m, cmd := m.Update(DoneMsg{})
	if cmd == nil || m.View() != "" {
		t.Error("DoneMsg should quit and clear the view")
	}
}
