package handler

import (
	"mirath/internal/estate"
	"mirath/internal/faraid"
)

// CreateEstateRequest is the body of POST /estates.
type CreateEstateRequest struct {
	Name      string  `json:"name"`
	NetAmount float64 `json:"netAmount"`
	Currency  string  `json:"currency"`
}

// AddHeirRequest is the body of POST /estates/{estateID}/heirs.
type AddHeirRequest struct {
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Gender       string  `json:"gender"`
	HeirGroup    string  `json:"heirGroup"`
	Portions     float64 `json:"portions"`
}

// ToRecord converts the request into a storage record; IDs and timestamps
// are filled by the service.
func (r AddHeirRequest) ToRecord() estate.HeirRecord {
	return estate.HeirRecord{
		Name:         r.Name,
		Relationship: r.Relationship,
		Gender:       r.Gender,
		HeirGroup:    r.HeirGroup,
		Portions:     r.Portions,
	}
}

// CalculateRequest is the body of POST /faraid/calculate: an ad-hoc roster
// evaluated without persisting anything.
type CalculateRequest struct {
	EstateAmount float64       `json:"estateAmount"`
	Heirs        []faraid.Heir `json:"heirs"`
}
