package edhgrab

import "context"

// CardDetails holds enrichment data for a single card. Fields the data
// source could not provide are empty; renderers show them as "N/A".
type CardDetails struct {
	Name       string `json:"name"`
	ManaCost   string `json:"manaCost,omitempty"`
	TypeLine   string `json:"typeLine,omitempty"`
	OracleText string `json:"oracleText,omitempty"`
	FlavorText string `json:"flavorText,omitempty"`
	Power      string `json:"power,omitempty"`
	Toughness  string `json:"toughness,omitempty"`
	Loyalty    string `json:"loyalty,omitempty"`
	Defense    string `json:"defense,omitempty"`

	// Price is the dual-currency display string (e.g. "$4.99 / €4.20").
	Price string `json:"price,omitempty"`

	Set SetInfo `json:"set"`
}

// SetInfo describes the printing's set.
type SetInfo struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	SymbolURL   string `json:"symbolUrl,omitempty"`
	ReleaseYear int    `json:"releaseYear,omitempty"`
}

// Validate returns an error if the card details contain invalid fields.
func (c *CardDetails) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "card name required")
	}
	return nil
}

// CardService looks up card enrichment data by exact name.
type CardService interface {
	// FindCardByName retrieves details for a card.
	// Returns ENOTFOUND if the card does not exist.
	FindCardByName(ctx context.Context, name string) (*CardDetails, error)
}

// SymbolService resolves set symbol images to local files.
type SymbolService interface {
	// SymbolPath downloads and sanitizes the set symbol on first use and
	// returns the path of the cached local copy.
	SymbolPath(ctx context.Context, setCode string, symbolURL string) (string, error)
}

// SymbolStore persists sanitized set symbol files on local disk.
type SymbolStore interface {
	// SymbolPath returns the path of a stored symbol.
	// Returns ENOTFOUND if no symbol is stored for the set code.
	SymbolPath(setCode string) (string, error)

	// SaveSymbol writes the symbol bytes and returns the stored path.
	SaveSymbol(setCode string, svg []byte) (string, error)
}
