package scryfall

import (
	"errors"
	"fmt"
)

// Card is a card object as returned by the Scryfall API.
type Card struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ReleasedAt string  `json:"released_at"`
	Layout     string  `json:"layout"`
	ManaCost   string  `json:"mana_cost,omitempty"`
	CMC        float64 `json:"cmc"`
	TypeLine   string  `json:"type_line"`
	OracleText string  `json:"oracle_text,omitempty"`
	FlavorText string  `json:"flavor_text,omitempty"`

	Power     string `json:"power,omitempty"`
	Toughness string `json:"toughness,omitempty"`
	Loyalty   string `json:"loyalty,omitempty"`
	Defense   string `json:"defense,omitempty"`

	SetCode         string `json:"set"`
	SetName         string `json:"set_name"`
	CollectorNumber string `json:"collector_number"`
	Rarity          string `json:"rarity"`

	// Multi-faced cards carry most fields on their faces instead.
	CardFaces []CardFace `json:"card_faces,omitempty"`

	Prices Prices `json:"prices"`
}

// CardFace is one face of a multi-faced card.
type CardFace struct {
	Name       string `json:"name"`
	ManaCost   string `json:"mana_cost,omitempty"`
	TypeLine   string `json:"type_line,omitempty"`
	OracleText string `json:"oracle_text,omitempty"`
	FlavorText string `json:"flavor_text,omitempty"`
	Power      string `json:"power,omitempty"`
	Toughness  string `json:"toughness,omitempty"`
	Loyalty    string `json:"loyalty,omitempty"`
	Defense    string `json:"defense,omitempty"`
}

// Prices holds the printing's prices in various currencies.
type Prices struct {
	USD     *string `json:"usd,omitempty"`
	USDFoil *string `json:"usd_foil,omitempty"`
	EUR     *string `json:"eur,omitempty"`
	EURFoil *string `json:"eur_foil,omitempty"`
	TIX     *string `json:"tix,omitempty"`
}

// Set is a set object as returned by the Scryfall API.
type Set struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	ReleasedAt string `json:"released_at,omitempty"`
	SetType    string `json:"set_type"`
	CardCount  int    `json:"card_count"`
	IconSVGURI string `json:"icon_svg_uri"`
}

// APIError is an error response from the Scryfall API.
type APIError struct {
	Object   string   `json:"object"`
	Code     string   `json:"code"`
	Status   int      `json:"status"`
	Details  string   `json:"details"`
	Warnings []string `json:"warnings,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall API error (HTTP %d): %s", e.Status, e.Details)
	}
	return fmt.Sprintf("scryfall API error (HTTP %d): %s", e.Status, e.Code)
}

// NotFoundError is a 404 response from the API.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// IsNotFound reports whether the error is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
