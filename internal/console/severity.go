package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Severity ranks a console line.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal
)

// SuccessLevel sits between log.InfoLevel and log.WarnLevel so that a logger
// at info level still prints success lines.
const SuccessLevel log.Level = 2

var severityNames = map[Severity]string{
	SeveritySuccess: "SUCCESS",
	SeverityInfo:    "INFO",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
	SeverityFatal:   "FATAL",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// level maps a severity onto the logger level it is printed at.
func (s Severity) level() log.Level {
	switch s {
	case SeveritySuccess:
		return SuccessLevel
	case SeverityWarning:
		return log.WarnLevel
	case SeverityError:
		return log.ErrorLevel
	case SeverityFatal:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Palette shared with the rest of the CLI output.
const (
	ColorSuccess = lipgloss.Color("#10B981")
	ColorInfo    = lipgloss.Color("#3B82F6")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
)

// tagWidth pads every "[LEVEL]" tag so messages line up in one column.
const tagWidth = 11

var severityColors = map[Severity]lipgloss.Color{
	SeveritySuccess: ColorSuccess,
	SeverityInfo:    ColorInfo,
	SeverityWarning: ColorWarning,
	SeverityError:   ColorError,
	SeverityFatal:   ColorError,
}

// tagStyle renders the bracketed tag for s.
func tagStyle(s Severity) lipgloss.Style {
	style := lipgloss.NewStyle().
		SetString("[" + s.String() + "]").
		Foreground(severityColors[s]).
		Width(tagWidth)
	if s == SeverityFatal {
		style = style.Bold(true)
	}
	return style
}

// styles builds the logger styles with one tag per severity.
func styles() *log.Styles {
	st := log.DefaultStyles()
	st.Levels = make(map[log.Level]lipgloss.Style, len(severityNames))
	for s := range severityNames {
		st.Levels[s.level()] = tagStyle(s)
	}
	return st
}
