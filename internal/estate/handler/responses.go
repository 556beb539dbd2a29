package handler

import (
	"mirath/internal/estate"
)

// EstateResponse is the wire shape of a stored estate with its roster.
type EstateResponse struct {
	Estate *estate.Estate       `json:"estate"`
	Heirs  []*estate.HeirRecord `json:"heirs"`
}
