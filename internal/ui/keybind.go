package ui

import (
	"slices"
	"strings"

	"folio/internal/site"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC g b" for
// SPC then g then b. Single keys: "1", "tab", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	pageFilter   map[string][]site.Page // nil/empty = applies on every page
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		pageFilter:   make(map[string][]site.Page),
	}
}

// Bind registers a key sequence to a command, replacing any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a help description.
// The binding applies on every page.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForPages(seq, cmd, desc, nil)
}

// BindForPages registers a key sequence that is only hinted on the given
// pages. An empty pages list means every page.
func (r *KeybindRegistry) BindForPages(seq string, cmd tea.Cmd, desc string, pages []site.Page) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(pages) > 0 {
		r.pageFilter[n] = pages
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabels names leader keys that open a further level.
var submenuLabels = map[string]string{
	"g": "Go to",
}

// LeaderHints returns the next keys available after currentSeq on page.
// With currentSeq empty it lists the first level after SPC. Keys that open a
// submenu are labelled with the submenu name instead of a single action.
func (r *KeybindRegistry) LeaderHints(currentSeq string, page site.Page) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, page) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if r.HasPrefix(prefix + next) {
			if label, ok := submenuLabels[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, page site.Page) bool {
	pages, ok := r.pageFilter[seq]
	return !ok || len(pages) == 0 || slices.Contains(pages, page)
}

// normalizeSeq converts tea key strings to the canonical "SPC x y" form.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if strings.HasPrefix(seq, " ") {
		// A bare " " (how Bubble Tea reports space) has no fields.
		parts = append([]string{"SPC"}, parts...)
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader (" " for space)
	LeaderWaiting bool     // true after the leader until a sequence completes or fails
	Buffer        []string // sequence typed so far in leader mode, e.g. ["SPC", "g"]
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
	}
}

// Handle processes a KeyMsg. consumed means the key belongs to the keybind
// system and must not reach the views; cmd is what to run, if anything.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		// Dead end: swallow the key and leave leader mode.
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq is the leader sequence typed so far, "" outside leader mode.
func (h *KeyHandler) CurrentSeq() string {
	if !h.LeaderWaiting {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
