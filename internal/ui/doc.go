// Package ui is the Bubble Tea front end of the portfolio.
//
// The root model (AppModel) owns a site.Controller and is the only caller of
// its mutating operations. Keys, mouse clicks and commands are turned into
// messages (NavigateMsg, SelectPostMsg, ClearPostMsg); Update applies them to
// the controller and re-resolves the content to show.
//
// Pieces:
//   - View: Elm-style unit with its own Init/Update/View
//   - BlogListView: cursor over the post catalog (bubbles/list)
//   - PageView: scrollable body for every other page (bubbles/viewport)
//   - pageRenderer: exhaustive site.ContentVisitor that turns content into text
//   - KeybindRegistry / KeyHandler: single keys plus SPC-leader sequences
package ui
