package tui

const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
)

// Layout defaults used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 24

	// listPaneRatio is the list pane's share of the width, in percent.
	listPaneRatio = 40
	minListWidth  = 20

	// headerLines is the number of lines above the first list row: the
	// title, a blank line and the list heading.
	headerLines = 3
	// footerLines covers the blank separator and the help line.
	footerLines = 2
	minListRows = 1

	borderPadding = 2
)
