package ui

import "folio/internal/site"

// NavigateMsg switches the active page (header tab, 1-5, SPC g …).
type NavigateMsg struct {
	Page site.Page
}

// NextPageMsg moves to the next header tab (tab).
type NextPageMsg struct{}

// PrevPageMsg moves to the previous header tab (shift+tab).
type PrevPageMsg struct{}

// SelectPostMsg opens a post from the blog listing (enter).
type SelectPostMsg struct {
	Post site.Post
}

// ClearPostMsg returns from a post to the listing (esc, backspace, "Back to Blog").
type ClearPostMsg struct{}
