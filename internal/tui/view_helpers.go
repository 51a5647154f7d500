package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage frames data between a title and the hotkey line shared by every
// screen.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: sair"))

	return b.String()
}

// fitText shortens v to at most max runes, ending with "..." when cut.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Local().Format("02/01 15:04")
}

func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return errorStyle.Render("Erro: " + msg)
}

// newFormInput returns a blurred input of the login and registration forms.
// Secret inputs echo '*'.
func newFormInput(placeholder string, limit int, secret bool) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 40
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	return input
}

// cycleFocus moves the focus of a form by step, wrapping around, and
// returns the new index.
func cycleFocus(inputs []textinput.Model, focus, step int) int {
	inputs[focus].Blur()
	focus = (focus + step + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
