// Package party defines the Party record served by the parties API and the
// JSON envelope that wraps every response.
//
// Party records are consumed as-is: the API owns their schema and this
// package performs no validation beyond decoding. The detail endpoint may
// return a richer record than the list endpoint (for example with a
// GuestList), so list entries and a selected party are never merged.
package party
