package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of text inputs with one focused field.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) value(i int) string {
	return f.inputs[i].Value()
}

// row renders a labelled input with its validation message.
func (f form) row(label string, i int, errText string) string {
	out := label + " │ [" + f.inputs[i].View() + "]\n"
	if errText != "" {
		out += "          " + errorStyle.Render(errText) + "\n"
	}
	return out
}
