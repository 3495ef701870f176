package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
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
	b.WriteString(helpStyle.Render("  ctrl+n: menu │ ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes, ending with "..." when shortened.
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// formatDate renders an ISO-8601 timestamp as "2 Jan 2006 15:04", or the
// raw value when it does not parse.
func formatDate(s models.Story) string {
	t, err := s.CreatedTime()
	if err != nil {
		return valueOrDash(s.CreatedAt)
	}
	return t.Local().Format("2 Jan 2006 15:04")
}

func formatCoords(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f, %.4f", *lat, *lon)
}

// storyTitle is the plain-text title of s for display.
func storyTitle(s models.Story) string {
	return utils.PlainText(s.Content().Title)
}

func ownerOf(s models.Story) string {
	if s.Name == "" {
		return "Anonymous"
	}
	return utils.PlainText(s.Name)
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
