package studio

import (
	"strings"

	"github.com/kavehm/motionlab/internal/editor"
)

// renderMessagesPanel renders the activity log, newest entry first.
func renderMessagesPanel(m *Model, width, height int) string {
	msgs := m.session.Messages()

	var lines []string
	lines = append(lines, panelTitleDimStyle.Render("Messages"))
	lines = append(lines, "")

	maxVisible := height - 4
	if maxVisible < 2 {
		maxVisible = 2
	}
	if len(msgs) > maxVisible {
		msgs = msgs[:maxVisible]
	}

	innerWidth := maxInt(width-8, 8)
	for _, msg := range msgs {
		var marker, text string
		if msg.Kind == editor.KindError {
			marker = msgMarkerError.Render("✗")
			text = msgErrorStyle.Render(truncate(msg.Text, innerWidth))
		} else {
			marker = msgMarkerInfo.Render("✓")
			text = msgInfoStyle.Render(truncate(msg.Text, innerWidth))
		}
		lines = append(lines, marker+" "+text)
	}

	if len(msgs) == 0 {
		lines = append(lines, statusIdleStyle.Render("nothing yet"))
	}

	body := strings.Join(lines, "\n")
	return panelStyle.Width(width - 2).Height(height - 1).Render(body)
}
