package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonfriesen/urlregex"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	optionalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Italic(true)

	statusRunning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	statusPaused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// patternClasses are the pattern fragments highlighted in the view,
// longest first.
var patternClasses = []string{`[^&;=]+`, `[^&;]+`, `[&;]?`, `[^?]+`, `[^?]*`, `[^/]+`, `[^/]*`, `\d+`, `https?`}

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	elapsed := time.Since(m.startTime).Round(time.Second)
	titleBar := fmt.Sprintf("%s  %s  %s  %s",
		titleStyle.Render("URL Regex Demo"),
		status,
		labelStyle.Render("Uptime:")+valueStyle.Render(elapsed.String()),
		helpStyle.Render("[q]uit [space]pause [tab]next [r]eset"))

	leftBox := boxStyle.Width(40).Height(8).Render(m.renderFamilies())
	rightBox := boxStyle.Width(36).Height(8).Render(m.renderStats())
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, " ", rightBox)

	patternBox := boxStyle.Width(78).Render(m.renderPattern())
	recentBox := boxStyle.Width(78).Render(m.renderRecent())

	return titleBar + "\n" + topRow + "\n" + patternBox + "\n" + recentBox + "\n"
}

func (m model) renderFamilies() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Families"))
	sb.WriteString("\n\n")

	for i, s := range m.states {
		name := labelStyle.Width(18).Render(s.family.name)
		marker := "  "
		if i == m.selected {
			name = selectedStyle.Width(18).Render(s.family.name)
			marker = selectedStyle.Render("> ")
		}

		state := ""
		if s.full {
			state = labelStyle.Render(" done")
		}
		sb.WriteString(fmt.Sprintf("%s%s%s%s\n", marker, name,
			valueStyle.Render(fmt.Sprintf("%5s", formatNumber(s.stats.LearnedCount))), state))
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Total: ") + valueStyle.Render(formatNumber(m.totalURLs)))
	sb.WriteString(labelStyle.Render("  Build: ") + valueStyle.Render(m.buildTime.Round(time.Microsecond).String()))
	return sb.String()
}

func (m model) renderStats() string {
	var sb strings.Builder
	s := m.states[m.selected]
	sb.WriteString(headerStyle.Render("Statistics"))
	sb.WriteString("\n\n")

	rows := [][2]string{
		{"Learned", formatNumber(s.stats.LearnedCount)},
		{"Unique", formatNumber(s.stats.UniqueCount)},
		{"Segments", fmt.Sprintf("%d (%d optional)", s.stats.Segments, s.stats.OptionalSegments)},
		{"Wildcards", fmt.Sprintf("%d", s.stats.Wildcards)},
		{"Query keys", fmt.Sprintf("%d (%d queried)", s.stats.QueryKeys, s.stats.QueryCount)},
		{"Changes", fmt.Sprintf("%d", s.changes)},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Width(12).Render(row[0]) + valueStyle.Render(row[1]) + "\n")
	}
	return sb.String()
}

func (m model) renderPattern() string {
	var sb strings.Builder
	s := m.states[m.selected]
	sb.WriteString(headerStyle.Render("Pattern"))
	sb.WriteString(" ")
	sb.WriteString(labelStyle.Render("(" + s.family.name + ")"))
	sb.WriteString("\n\n")

	if s.pattern == "" {
		sb.WriteString(labelStyle.Render("(learning...)"))
		return sb.String()
	}

	sb.WriteString(highlightPattern(s.pattern))
	sb.WriteString("\n\n")
	sb.WriteString(renderSegments(s.inducer.Generalized()))
	return sb.String()
}

func renderSegments(segments []urlregex.Segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		text := urlregex.DisplayContent(seg.Content) + seg.Separator
		if seg.Optional {
			parts[i] = optionalStyle.Render("[" + text + "]")
		} else {
			parts[i] = patternStyle.Render(text)
		}
	}
	return strings.Join(parts, " ")
}

func (m model) renderRecent() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Recent URLs"))
	sb.WriteString("\n\n")

	if len(m.recentURLs) == 0 {
		sb.WriteString(labelStyle.Render("(learning...)"))
		return sb.String()
	}

	for _, u := range m.recentURLs {
		sb.WriteString(urlStyle.Render(truncate(u, 74)) + "\n")
	}
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// highlightPattern colors the character classes of a pattern and leaves
// literal text in the pattern color.
func highlightPattern(pattern string) string {
	var sb strings.Builder
	literalStart := 0
	for i := 0; i < len(pattern); {
		class := classAt(pattern, i)
		if class == "" {
			i++
			continue
		}
		if literalStart < i {
			sb.WriteString(patternStyle.Render(pattern[literalStart:i]))
		}
		sb.WriteString(classStyle.Render(class))
		i += len(class)
		literalStart = i
	}
	if literalStart < len(pattern) {
		sb.WriteString(patternStyle.Render(pattern[literalStart:]))
	}
	return sb.String()
}

func classAt(pattern string, i int) string {
	for _, class := range patternClasses {
		if strings.HasPrefix(pattern[i:], class) {
			return class
		}
	}
	return ""
}
