package party

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingData is returned when a response envelope has no data member, or
// the member is JSON null.
var ErrMissingData = errors.New("response envelope has no data")

// Party is a single event as returned by the parties API.
type Party struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	// GuestList is a serialized guest list. It is display text and is never parsed.
	GuestList string `json:"guestList,omitempty"`
}

// HasGuestList reports whether the record carries guest list text.
func (p Party) HasGuestList() bool {
	return p.GuestList != ""
}

// Envelope is the `{ "data": ... }` wrapper around every API payload.
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeList unmarshals an envelope whose data member is an array of parties.
// An empty array decodes to an empty, non-nil slice.
func DecodeList(body []byte) ([]Party, error) {
	raw, err := unwrap(body)
	if err != nil {
		return nil, err
	}

	parties := []Party{}
	if err := json.Unmarshal(raw, &parties); err != nil {
		return nil, fmt.Errorf("decoding party list: %w", err)
	}
	return parties, nil
}

// DecodeOne unmarshals an envelope whose data member is a single party.
func DecodeOne(body []byte) (Party, error) {
	raw, err := unwrap(body)
	if err != nil {
		return Party{}, err
	}

	var p Party
	if err := json.Unmarshal(raw, &p); err != nil {
		return Party{}, fmt.Errorf("decoding party: %w", err)
	}
	return p, nil
}

func unwrap(body []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, ErrMissingData
	}
	return env.Data, nil
}
