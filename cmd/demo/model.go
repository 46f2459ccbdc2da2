package main

import (
	"fmt"
	"time"

	"github.com/jonfriesen/urlregex"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	batchSize      = 3
	tickInterval   = 250 * time.Millisecond
	maxSampleSize  = 300
	maxRecentCount = 6
)

type tickMsg time.Time

// familyState is the running sample and latest pattern of one family.
type familyState struct {
	family  family
	inducer *urlregex.Inducer
	pattern string
	stats   urlregex.Stats
	changes int // times the pattern changed
	full    bool
}

type model struct {
	generator  *URLGenerator
	states     []*familyState
	selected   int
	recentURLs []string
	totalURLs  int
	buildTime  time.Duration
	startTime  time.Time
	running    bool
	quitting   bool
	width      int
	height     int
}

func newModel(seed int64) model {
	states := make([]*familyState, len(families))
	for i, f := range families {
		states[i] = &familyState{
			family:  f,
			inducer: urlregex.NewInducer(),
		}
	}

	return model{
		generator:  NewURLGenerator(seed),
		states:     states,
		recentURLs: make([]string, 0, maxRecentCount),
		startTime:  time.Now(),
		running:    true,
		width:      120,
		height:     24,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnterAltScreen)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
			return m, nil
		case "tab", "down", "j":
			m.selected = (m.selected + 1) % len(m.states)
			return m, nil
		case "shift+tab", "up", "k":
			m.selected = (m.selected + len(m.states) - 1) % len(m.states)
			return m, nil
		case "r":
			return newModel(time.Now().UnixNano()), tickCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.running {
			return m, tickCmd()
		}
		m.step()
		return m, tickCmd()
	}

	return m, nil
}

// step feeds one batch to every family that has not reached the sample cap
// and rebuilds its pattern.
func (m *model) step() {
	start := time.Now()
	for _, s := range m.states {
		if s.full {
			continue
		}

		urls := m.generator.GenerateBatch(s.family, batchSize)
		s.inducer.Learn(urls)
		m.totalURLs += len(urls)
		m.addRecent(urls[len(urls)-1])

		pattern, err := s.inducer.Pattern()
		if err != nil {
			continue
		}
		if pattern != s.pattern {
			s.pattern = pattern
			s.changes++
		}
		s.stats = s.inducer.Stats()
		s.full = s.stats.LearnedCount >= maxSampleSize
	}
	m.buildTime = time.Since(start)
}

func (m *model) addRecent(url string) {
	m.recentURLs = append([]string{url}, m.recentURLs...)
	if len(m.recentURLs) > maxRecentCount {
		m.recentURLs = m.recentURLs[:maxRecentCount]
	}
}

func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.2fM", float64(n)/1000000)
}
