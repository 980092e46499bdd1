package ui

import (
	"sort"

	"folio/internal/site"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// RenderKeybindHelp produces the transient popup shown after SPC: the keys
// that can follow the sequence typed so far on the current page.
func RenderKeybindHelp(h *KeyHandler, page site.Page, st Styles) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(seq, page)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	hm := help.New()
	hm.Styles.ShortKey = st.HelpKey
	hm.Styles.ShortDesc = st.Muted
	hm.Styles.ShortSeparator = st.Muted

	return st.HelpBox.Render(st.Muted.Render(seq) + " " + hm.ShortHelpView(bindings))
}
