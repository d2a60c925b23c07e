package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/jstext/internal/repl"
)

const maxTableRows = 16

type model struct {
	session *repl.Session
	input   textinput.Model
	style   Style

	recall   []string
	recallAt int
	last     repl.Result
	height   int
}

func newModel(cfg repl.Config, st Style) model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "command, e.g. padStart 8 xy"
	in.Focus()
	return model{
		session: repl.New(cfg),
		input:   in,
		style:   st,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.exec(m.input.Value())
			return m, nil
		case "up":
			m.recallPrev()
			return m, nil
		case "down":
			m.recallNext()
			return m, nil
		case "ctrl+z":
			m.last = m.session.Exec("undo")
			return m, nil
		case "ctrl+y":
			m.last = m.session.Exec("redo")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) exec(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.last = m.session.Exec(line)
	m.recall = append(m.recall, line)
	m.recallAt = len(m.recall)
	m.input.Reset()
}

func (m *model) recallPrev() {
	if m.recallAt == 0 {
		return
	}
	m.recallAt--
	m.input.SetValue(m.recall[m.recallAt])
	m.input.CursorEnd()
}

func (m *model) recallNext() {
	if m.recallAt >= len(m.recall)-1 {
		m.recallAt = len(m.recall)
		m.input.Reset()
		return
	}
	m.recallAt++
	m.input.SetValue(m.recall[m.recallAt])
	m.input.CursorEnd()
}

func (m model) View() string {
	st := m.style
	v := m.session.Value()

	var b strings.Builder
	b.WriteString(st.Label.Render("value ") + st.Value.Render(strconv.Quote(v.String())) + "\n")
	b.WriteString(st.Label.Render(fmt.Sprintf("len %d  graphemes %d  width %d", v.Len(), v.GraphemeLen(), v.Width())) + "\n\n")

	b.WriteString(st.Header.Render(fmt.Sprintf("%5s  %-6s %-9s %s", "#", "char", "code", "w")) + "\n")
	rows, limit := 0, m.tableRows()
	for i, ch := range v.Entries() {
		if rows == limit {
			b.WriteString(st.Label.Render(fmt.Sprintf("%5s  %d more", "...", v.Len()-rows)) + "\n")
			break
		}
		b.WriteString(st.Row.Render(codePointRow(i, ch)) + "\n")
		rows++
	}
	b.WriteString("\n")

	switch {
	case m.last.Err != nil:
		b.WriteString(st.Error.Render("error: "+m.last.Err.Error()) + "\n")
	case m.last.Output != "":
		b.WriteString(st.Output.Render(m.last.Command+" => "+m.last.Output) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString(m.input.View() + "\n")
	b.WriteString(st.Help.Render("enter run | up/down recall | ctrl+z undo | ctrl+y redo | esc quit"))
	return b.String()
}

// tableRows leaves room for the header, result and prompt lines.
func (m model) tableRows() int {
	if m.height <= 0 {
		return maxTableRows
	}
	return max(1, min(maxTableRows, m.height-9))
}

func codePointRow(i int, ch string) string {
	r := []rune(ch)[0]
	shown := ch
	if !strconv.IsPrint(r) {
		shown = strconv.QuoteRuneToASCII(r)
		shown = shown[1 : len(shown)-1]
	}
	return fmt.Sprintf("%5d  %-6s U+%04X    %d", i, shown, r, runewidth.RuneWidth(r))
}
