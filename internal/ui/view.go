package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menunav/internal/screen"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.viewWidth()
	lines := make([]string, 0, 24)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, renderStyled(styles.Header, header), "")
	}
	if m.jump != nil {
		lines = append(lines, m.jumpLines(width)...)
	} else if cur, ok := m.nav.Current(); ok {
		lines = append(lines, m.bodyLines(cur, width)...)
		if desc := m.focusDescription(); desc != "" {
			lines = append(lines, "", renderStyled(styles.Description, desc))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, "", renderStyled(styles.Info, info))
	}
	if m.showFooter || m.showHelp {
		m.help.Width = width
		m.help.ShowAll = m.showHelp
		lines = append(lines, "", m.help.View(m.keys))
	}

	bottom := []string{""}
	if m.errMsg != "" {
		bottom[0] = renderStyled(styles.Error, "Error: "+m.errMsg)
	}
	switch {
	case m.editor != nil:
		bottom = append(bottom, m.editor.input.View())
	case m.jump != nil:
		bottom = append(bottom, m.jumpPrompt())
	}
	if m.height > 0 {
		lines = limitHeight(lines, m.height-len(bottom), width)
	}
	lines = append(lines, bottom...)
	return strings.Join(applyWidth(lines, width), "\n")
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// menuHeader is the breadcrumb of screen titles in the history, with the
// page position on paginated screens.
func (m *Model) menuHeader() string {
	history := m.nav.History()
	if len(history) == 0 {
		return ""
	}
	segments := make([]string, 0, len(history))
	for _, s := range history {
		if title := strings.TrimSpace(s.Title()); title != "" {
			segments = append(segments, title)
		}
	}
	header := strings.Join(segments, menuHeaderSeparator)
	if p, ok := history[len(history)-1].(*screen.Paginated); ok && p.PageCount() > 1 {
		header += fmt.Sprintf(" (%d/%d)", p.PageNumber()+1, p.PageCount())
	}
	return header
}

func (m *Model) focusDescription() string {
	focus := m.nav.Focus()
	if focus == nil {
		return ""
	}
	return strings.TrimSpace(focus.Control().Description())
}

func (m *Model) jumpLines(width int) []string {
	if len(m.jump.Items) == 0 {
		msg := "(no controls)"
		if strings.TrimSpace(m.jump.Query) != "" {
			msg = fmt.Sprintf("No matches for %q", m.jump.Query)
		}
		return []string{renderStyled(styles.Info, msg)}
	}
	visible := m.jump.Visible(m.maxVisibleJumpItems())
	lines := make([]string, 0, len(visible))
	for i, item := range visible {
		seg := segment{prefix: noIndicator, prefixStyle: styles.ItemIndicator, text: item.Label, style: styles.Item}
		if m.jump.ViewportOffset+i == m.jump.Cursor {
			seg.prefix = indicator
			seg.prefixStyle = styles.SelectedItemIndicator
			seg.style = styles.SelectedItem
		}
		lines = append(lines, seg.render())
	}
	return lines
}

func (m *Model) maxVisibleJumpItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, blank line, status
	used++    // prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	return max(m.height-used, 1)
}

func (m *Model) jumpPrompt() string {
	prompt := renderStyled(styles.FilterPrompt, "» ")
	text := m.jump.Query
	if text == "" {
		placeholder := []rune("(type to jump)")
		if styles.FilterPlaceholder != nil {
			m.jumpCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderQueryCursor(string(placeholder[0])) + renderStyled(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	if styles.Filter != nil {
		m.jumpCursor.TextStyle = styles.Filter.Copy()
	}
	runes := []rune(text)
	pos := m.jump.QueryCursorPos()
	caret, after := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + renderStyled(styles.Filter, string(runes[:pos])) + m.renderQueryCursor(caret) + renderStyled(styles.Filter, after)
}

func (m *Model) renderQueryCursor(char string) string {
	m.jumpCursor.SetChar(char)
	base := m.jumpCursor.TextStyle.Copy().Inline(true)
	if m.jumpCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func limitHeight(lines []string, height, width int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{ansi.Truncate("…", width, "")}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, "…")
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		out[i] = line
	}
	return out
}
