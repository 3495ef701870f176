package tui

// errorOverlayModel blocks the screen until dismissed. Used for
// permission problems, which need the user's attention at the point of use.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := titleStyle.Render("Attention") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n" + helpStyle.Render("y: yes    n: no")
	return overlayBoxStyle.Render(content)
}
