package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Views receive size changes through SetSize rather than WindowSizeMsg so the
// root model can subtract the header and footer first.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
}
