// Package listview provides a windowed list component for Bubble Tea TUI
// applications.
//
// Only the rows inside the viewport are rendered, so the view's line count is
// bounded by the viewport height and screen rows map directly to item
// indexes, which lets callers translate mouse clicks into selections. Key
// features:
//   - Keyboard navigation (up/down, j/k, pgup/pgdn, home/end)
//   - Cursor kept inside the viewport on every move and resize
//   - Row hit-testing via RowAt for mouse support
package listview
