// Package detail renders the party details pane of the terminal UI.
//
// The pane shows either the selected party's card (name, date, location,
// description and, when present, the guest list) or a prompt asking the user
// to pick a party. Rendering is a pure function of its arguments.
package detail
