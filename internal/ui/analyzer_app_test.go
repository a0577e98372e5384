package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/sentimeter/internal/emoji"
	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/samples"
	"github.com/yildizm/sentimeter/internal/sentiment"
)

func newTestModel(t *testing.T) *AnalyzerModel {
	t.Helper()
	scorer, err := sentiment.NewLexiconScorer(sentiment.Options{})
	if err != nil {
		t.Fatalf("NewLexiconScorer failed: %v", err)
	}
	log := logger.New("ui", nil)
	log.SetOutput(&bytes.Buffer{})

	m, err := NewAnalyzerModel(Options{
		Scorer: scorer,
		Source: &samples.Source{Texts: samples.Builtin(), Delay: time.Second, Origin: "builtin"},
		Logger: log,
	})
	if err != nil {
		t.Fatalf("NewAnalyzerModel failed: %v", err)
	}
	return m
}

func press(m *AnalyzerModel, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func TestAnalyzeKey(t *testing.T) {
	m := newTestModel(t)
	m.SetInput("I absolutely love this!")

	press(m, tea.KeyCtrlS)

	current := m.State().Current()
	if current == nil {
		t.Fatal("Expected a result after ctrl+s")
	}
	if current.Category() != sentiment.CategoryPositive {
		t.Errorf("Expected positive, got %s", current.Category())
	}

	expected, _ := sentiment.Analyze("I absolutely love this!")
	if current.Score != expected.Score {
		t.Errorf("Expected score %d, got %d", expected.Score, current.Score)
	}
}

func TestAnalyzeBlankInputKeepsResult(t *testing.T) {
	m := newTestModel(t)
	m.SetInput("great")
	press(m, tea.KeyCtrlS)
	first := m.State().Current()

	m.SetInput("   ")
	press(m, tea.KeyCtrlS)

	if m.State().Current() != first {
		t.Error("Expected blank analyze to leave the result unchanged")
	}
}

func TestTypingDoesNotRescore(t *testing.T) {
	m := newTestModel(t)
	m.SetInput("great")
	press(m, tea.KeyCtrlS)
	first := m.State().Current()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})

	if m.State().InputText() != "great!" {
		t.Errorf("Expected typed text to reach the state, got %q", m.State().InputText())
	}
	if m.State().Current() != first {
		t.Error("Expected typing to leave the result unchanged")
	}
}

func TestLoadKeyIgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t)

	if cmd := press(m, tea.KeyCtrlL); cmd == nil {
		t.Fatal("Expected a command for the first load")
	}
	if !m.State().IsLoading() {
		t.Fatal("Expected loading after ctrl+l")
	}

	if cmd := press(m, tea.KeyCtrlL); cmd != nil {
		t.Error("Expected second ctrl+l to be ignored while loading")
	}
	if !strings.Contains(m.View(), "Loading samples") {
		t.Error("Expected loading line in view")
	}

	m.Update(samplesLoadedMsg{texts: samples.Builtin()})

	if m.State().IsLoading() {
		t.Error("Expected loading to clear after samples arrive")
	}
	if len(m.scored) != len(samples.Builtin()) {
		t.Errorf("Expected %d scored samples, got %d", len(samples.Builtin()), len(m.scored))
	}
	if m.scored[0].Category != sentiment.CategoryPositive || m.scored[1].Category != sentiment.CategoryNegative {
		t.Errorf("Unexpected categories: %s, %s", m.scored[0].Category, m.scored[1].Category)
	}
}

func TestEmptyListHint(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), emptyListHint) {
		t.Error("Expected empty list hint before samples are loaded")
	}
}

func TestFocusAndScroll(t *testing.T) {
	m := newTestModel(t)
	m.Update(samplesLoadedMsg{texts: samples.Builtin()})

	press(m, tea.KeyDown)
	if m.selected != 0 {
		t.Error("Expected down to go to the input while it has focus")
	}

	press(m, tea.KeyTab)
	if m.focus != focusList {
		t.Fatal("Expected tab to focus the list")
	}

	for i := 0; i < 10; i++ {
		press(m, tea.KeyDown)
	}
	if m.selected != len(m.scored)-1 {
		t.Errorf("Expected selection clamped to %d, got %d", len(m.scored)-1, m.selected)
	}

	press(m, tea.KeyUp)
	if m.selected != len(m.scored)-2 {
		t.Errorf("Expected selection %d, got %d", len(m.scored)-2, m.selected)
	}

	press(m, tea.KeyTab)
	if m.focus != focusInput {
		t.Error("Expected tab to return focus to the input")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t)
		cmd := press(m, key)
		if cmd == nil {
			t.Fatalf("Expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Expected tea.QuitMsg for %v", key)
		}
	}
}

func TestTickStopsWhenIdle(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("Expected no further ticks when not loading")
	}

	press(m, tea.KeyCtrlL)
	if _, cmd := m.Update(tickMsg(time.Now())); cmd == nil {
		t.Error("Expected spinner to keep ticking while loading")
	}
}

func TestViewRendersResult(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	m := newTestModel(t)
	m.SetInput("This is the worst")
	press(m, tea.KeyCtrlS)

	out := m.View()
	for _, want := range []string{"Score:", "negative", "Negative words: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestTrendAfterSeveralAnalyses(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(m.View(), "Trend:") {
		t.Error("Expected no trend before any analysis")
	}

	for _, text := range []string{"great", "awful", "okay then"} {
		m.SetInput(text)
		press(m, tea.KeyCtrlS)
	}

	if len(m.history) != 3 {
		t.Errorf("Expected 3 history entries, got %d", len(m.history))
	}
	if !strings.Contains(m.View(), "Trend:") {
		t.Error("Expected trend line after several analyses")
	}

	for i := 0; i < historySize+5; i++ {
		m.recordHistory(0)
	}
	if len(m.history) != historySize {
		t.Errorf("Expected history capped at %d, got %d", historySize, len(m.history))
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		total, selected, capacity int
		start, end                int
	}{
		{5, 0, 10, 0, 5},
		{10, 0, 4, 0, 4},
		{10, 5, 4, 3, 7},
		{10, 9, 4, 6, 10},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.total, tt.selected, tt.capacity)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d): expected [%d,%d), got [%d,%d)",
				tt.total, tt.selected, tt.capacity, tt.start, tt.end, start, end)
		}
	}
}

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(&DefaultTheme)

	for _, name := range GetAvailableThemes() {
		if !SetThemeByName(name) {
			t.Errorf("Expected theme %s to exist", name)
		}
		if GetTheme().Name != name {
			t.Errorf("Expected active theme %s, got %s", name, GetTheme().Name)
		}
	}
	if SetThemeByName("neon") {
		t.Error("Expected unknown theme to be rejected")
	}
}
