package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap implements help.KeyMap over a KeybindRegistry.
// Short help lists single-key bindings; full help adds the leader bindings
// as a second column.
type KeyMap struct {
	registry *KeybindRegistry
}

// Ensure KeyMap implements help.KeyMap.
var _ help.KeyMap = KeyMap{}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) KeyMap {
	return KeyMap{registry: registry}
}

// ShortHelp returns the single-key bindings.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return toKeyBindings(km.registry.Bindings(false))
}

// FullHelp returns single-key and leader bindings as two columns.
func (km KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	var cols [][]key.Binding
	if short := km.ShortHelp(); len(short) > 0 {
		cols = append(cols, short)
	}
	if leader := toKeyBindings(km.registry.Bindings(true)); len(leader) > 0 {
		cols = append(cols, leader)
	}
	return cols
}

func toKeyBindings(bs []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bs))
	for _, b := range bs {
		out = append(out, key.NewBinding(
			key.WithKeys(b.Seq),
			key.WithHelp(b.Seq, b.Desc),
		))
	}
	return out
}

// RenderLeaderHelp produces the transient bar shown after SPC.
func RenderLeaderHelp(h *KeyHandler, theme Theme) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	hints := h.Registry.LeaderHints(h.CurrentSeq())
	bindings := toKeyBindings(hints)
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	m := newHelpModel(theme)
	content := theme.HelpDesc.Render(h.CurrentSeq()) + " " + m.ShortHelpView(bindings)
	return theme.Leader.Render(content)
}

func newHelpModel(theme Theme) help.Model {
	m := help.New()
	m.Styles.ShortKey = theme.HelpKey
	m.Styles.ShortDesc = theme.HelpDesc
	m.Styles.ShortSeparator = theme.HelpSep
	m.Styles.FullKey = theme.HelpKey
	m.Styles.FullDesc = theme.HelpDesc
	m.Styles.FullSeparator = theme.HelpSep
	return m
}
