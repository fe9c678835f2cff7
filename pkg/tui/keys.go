package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the calendar understands.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	NextYear key.Binding
	PrevYear key.Binding
	Open     key.Binding
	Manager  key.Binding
	Theme    key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Day editor.
	Level    key.Binding
	Clear    key.Binding
	Med      key.Binding
	Type     key.Binding
	Complete key.Binding
	Remove   key.Binding
	Save     key.Binding
	Cancel   key.Binding

	// Appointment manager.
	New  key.Binding
	Edit key.Binding
	Swap key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "semana anterior")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "semana siguiente")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "día anterior")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "día siguiente")),
		NextTab:  key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "mes siguiente")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "p"), key.WithHelp("shift+tab", "mes anterior")),
		NextYear: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "año siguiente")),
		PrevYear: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "año anterior")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "editar día")),
		Manager:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "citas")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tema")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exportar imagen")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),

		Level:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "nivel")),
		Clear:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "sin nivel")),
		Med:      key.NewBinding(key.WithKeys("b", "r", "v", "d"), key.WithHelp("b/r/v/d", "medicamento")),
		Type:     key.NewBinding(key.WithKeys("i", "tab"), key.WithHelp("i", "escribir cita")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completar cita")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "eliminar cita")),
		Save:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "guardar")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),

		New:  key.NewBinding(key.WithKeys("n", "+"), key.WithHelp("n", "nueva cita")),
		Edit: key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "editar cita")),
		Swap: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "cambiar campo")),
	}
}

// helpKeys adapts the bindings relevant to the current mode to help.KeyMap.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }

func (m *Model) helpKeys() helpKeys {
	k := m.keys
	switch m.mode() {
	case modeEditor:
		if m.editorTyping {
			return helpKeys{short: []key.Binding{k.Save, k.Cancel}}
		}
		b := []key.Binding{k.Level, k.Clear, k.Med, k.Type, k.Complete, k.Remove, k.Save, k.Cancel}
		return helpKeys{short: b, full: [][]key.Binding{b}}
	case modeManager:
		if m.formOpen {
			return helpKeys{short: []key.Binding{k.Swap, k.Save, k.Cancel}}
		}
		b := []key.Binding{k.Up, k.Down, k.New, k.Edit, k.Complete, k.Remove, k.Cancel}
		return helpKeys{short: b, full: [][]key.Binding{b}}
	}
	nav := []key.Binding{k.Up, k.Down, k.Left, k.Right, k.NextTab, k.PrevTab, k.NextYear, k.PrevYear}
	act := []key.Binding{k.Open, k.Manager, k.Theme, k.Export, k.Help, k.Quit}
	return helpKeys{
		short: []key.Binding{k.Open, k.Manager, k.NextTab, k.Theme, k.Export, k.Help, k.Quit},
		full:  [][]key.Binding{nav, act},
	}
}
