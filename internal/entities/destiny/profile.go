package destiny

import "time"

// Profile is one character slot of an owner with its rehydrated levels.
// Specs always holds every canonical table id.
type Profile struct {
	ID        string         `json:"profileId"`
	OwnerID   string         `json:"ownerId"`
	Slot      int            `json:"slot"`
	Name      string         `json:"name"`
	Server    string         `json:"server"`
	Specs     map[string]int `json:"specs"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
