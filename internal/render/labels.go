package render

// Literal texts shared by every renderer, including the terminal UI.
const (
	Title            = "Party Planner"
	ListHeading      = "Upcoming Parties"
	EmptyListMessage = "No parties available"
	DetailsHeading   = "Party Details"
	SelectPrompt     = "Please select a party to view more details."

	DateLabel        = "Date:"
	LocationLabel    = "Location:"
	DescriptionLabel = "Description:"
	GuestListLabel   = "Guest List:"

	// MountID is the id of the element the page is written into.
	MountID = "app"
)
