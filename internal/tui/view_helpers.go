package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-fetch/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// maxLabelWidth bounds a rendered task line so long labels do not wrap.
const maxLabelWidth = 60

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
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

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// taskLine renders a task the way the list shows it: "label - ID:id".
func taskLine(task models.Task) string {
	return fmt.Sprintf("%s - ID:%d", fitText(task.Label, maxLabelWidth), task.ID)
}

func taskCount(n int) string {
	switch n {
	case 0:
		return "No tasks yet"
	case 1:
		return "1 task"
	default:
		return fmt.Sprintf("%d tasks", n)
	}
}
