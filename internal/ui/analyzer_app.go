package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/sentimeter/internal/logger"
	"github.com/yildizm/sentimeter/internal/metrics"
	"github.com/yildizm/sentimeter/internal/samples"
	"github.com/yildizm/sentimeter/internal/sentiment"
	"github.com/yildizm/sentimeter/internal/view"
)

const (
	defaultPlaceholder = "Enter text to analyze..."
	defaultInputHeight = 4
	defaultWidth       = 80

	// historySize caps the comparative scores kept for the trend line
	historySize = 40
	// trendBound is the comparative magnitude drawn at the top or bottom
	trendBound = 2.0
)

// AnalyzerModel is the interactive analyzer screen. All view state changes
// happen in Update.
type AnalyzerModel struct {
	state  *view.State
	source *samples.Source
	input  textarea.Model
	styles *Styles
	log    *logger.Logger

	scored   []sentiment.ScoredText
	history  []float64
	focus    focusArea
	selected int
	err      error

	width    int
	height   int
	ready    bool
	quitting bool

	spinnerFrame int
}

// NewAnalyzerModel creates the analyzer screen
func NewAnalyzerModel(opts Options) (*AnalyzerModel, error) {
	if opts.Scorer == nil {
		scorer, err := sentiment.Default()
		if err != nil {
			return nil, err
		}
		opts.Scorer = scorer
	}
	if opts.Source == nil {
		opts.Source = &samples.Source{Texts: samples.Builtin(), Delay: samples.DefaultDelay, Origin: "builtin"}
	}
	if opts.Placeholder == "" {
		opts.Placeholder = defaultPlaceholder
	}
	if opts.InputHeight <= 0 {
		opts.InputHeight = defaultInputHeight
	}
	if opts.Logger == nil {
		opts.Logger = logger.New("ui", nil)
	}

	input := textarea.New()
	input.Placeholder = opts.Placeholder
	input.ShowLineNumbers = false
	input.SetHeight(opts.InputHeight)
	input.SetWidth(defaultWidth - 4)
	input.Focus()

	return &AnalyzerModel{
		state:  view.New(opts.Scorer),
		source: opts.Source,
		input:  input,
		styles: GetStyles(),
		log:    opts.Logger,
		width:  defaultWidth,
	}, nil
}

// State exposes the underlying view state
func (m *AnalyzerModel) State() *view.State {
	return m.state
}

// Init initializes the model
func (m *AnalyzerModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m *AnalyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tickMsg:
		return m.handleTick()
	case samplesLoadedMsg:
		return m.handleSamplesLoaded(msg)
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

// handleWindowResize handles window resize events
func (m *AnalyzerModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	if w := msg.Width - 4; w > 10 {
		m.input.SetWidth(w)
	}
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *AnalyzerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyQuitAlt:
		m.quitting = true
		return m, tea.Quit
	case keyAnalyze, keyAnalyzeAlt:
		return m.handleAnalyze()
	case keyLoad:
		return m.handleLoad()
	case keyFocus:
		return m.handleFocus()
	case keyUp:
		if m.focus == focusList {
			return m.handleMoveUp()
		}
	case keyDown:
		if m.focus == focusList {
			return m.handleMoveDown()
		}
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

// updateInput forwards msg to the textarea and mirrors its value into the
// view state. The current result is left alone until the next analyze.
func (m *AnalyzerModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetInputText(m.input.Value())
	return m, cmd
}

// handleAnalyze scores the input text
func (m *AnalyzerModel) handleAnalyze() (tea.Model, tea.Cmd) {
	m.state.SetInputText(m.input.Value())

	result, err := m.state.Analyze()
	if err != nil {
		m.err = err
		m.log.WarnWithFields("analysis failed", []logger.Field{logger.Error(err)})
		return m, nil
	}
	m.err = nil
	if result != nil {
		m.recordHistory(result.Comparative)
		m.log.DebugWithFields("analyzed input", []logger.Field{
			logger.Score(result.Score),
			logger.Category(string(result.Category())),
		})
	}
	return m, nil
}

// recordHistory appends a comparative score, dropping the oldest past
// historySize
func (m *AnalyzerModel) recordHistory(comparative float64) {
	m.history = append(m.history, comparative)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}

// handleLoad starts a sample load unless one is already running
func (m *AnalyzerModel) handleLoad() (tea.Model, tea.Cmd) {
	if !m.state.BeginLoad() {
		return m, nil
	}
	m.log.DebugWithFields("loading samples", []logger.Field{
		logger.Source(m.source.Origin),
		logger.Duration(m.source.Delay),
	})
	return m, tea.Batch(loadSamplesCmd(m.source.Texts, m.source.Delay), tick())
}

// handleSamplesLoaded completes the load and scores the list
func (m *AnalyzerModel) handleSamplesLoaded(msg samplesLoadedMsg) (tea.Model, tea.Cmd) {
	m.state.CompleteLoad(msg.texts)
	metrics.SampleLoads.Inc()

	scored, err := m.state.ScoredSamples()
	if err != nil {
		m.err = err
		m.log.WarnWithFields("scoring samples failed", []logger.Field{logger.Error(err)})
		m.scored = nil
		return m, nil
	}
	m.scored = scored
	if m.selected >= len(scored) {
		m.selected = 0
	}
	m.log.DebugWithFields("samples loaded", []logger.Field{logger.Count(len(scored))})
	return m, nil
}

// handleFocus switches focus between the input and the sample list
func (m *AnalyzerModel) handleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

// handleMoveUp handles up movement
func (m *AnalyzerModel) handleMoveUp() (tea.Model, tea.Cmd) {
	if m.selected > 0 {
		m.selected--
	}
	return m, nil
}

// handleMoveDown handles down movement
func (m *AnalyzerModel) handleMoveDown() (tea.Model, tea.Cmd) {
	if m.selected < len(m.scored)-1 {
		m.selected++
	}
	return m, nil
}

// handleTick advances the spinner while a load is in flight
func (m *AnalyzerModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.state.IsLoading() {
		return m, nil
	}
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerChars)
	return m, tick()
}

// SetInput replaces the textarea contents
func (m *AnalyzerModel) SetInput(text string) {
	m.input.SetValue(strings.TrimRight(text, "\n"))
	m.state.SetInputText(m.input.Value())
}
