// Package estate holds the collaborator around the calculation engine: the
// estates and heir rosters that supply the engine's input.
package estate

import "time"

// Estate is one deceased person's net distributable estate.
type Estate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NetAmount float64   `json:"netAmount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HeirRecord is one roster entry as stored. Relationship, gender, and heir
// group stay free-form here; the engine canonicalizes them at calculation
// time.
type HeirRecord struct {
	ID           string    `json:"id"`
	EstateID     string    `json:"estateId"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Gender       string    `json:"gender,omitempty"`
	HeirGroup    string    `json:"heirGroup"`
	Portions     float64   `json:"portions,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
