package models

// RawListing is one vehicle item exactly as the AutoTrader feed returns it.
// Field presence and types vary between dealers and feed versions, so it stays
// an untyped map until the formatter normalizes it. The cache persists this
// raw form so a format change upstream never invalidates old snapshots.
type RawListing map[string]any

// Listing is the normalized, display-ready form of a vehicle.
//
// Every field has a deterministic default: a malformed or missing source
// field degrades to its default instead of failing the whole record.
type Listing struct {
	ID               string   `json:"id"`
	Make             string   `json:"make"`
	Model            string   `json:"model"`
	Year             string   `json:"year"`
	PriceDisplay     string   `json:"price_display"` // "R1 250 000" or "POA"
	PriceValue       float64  `json:"price"`         // numeric, sorting only; 0 for POA
	ImageURLs        []string `json:"image_urls"`
	Variant          string   `json:"variant"`
	BodyType         string   `json:"body_type"`
	Colour           string   `json:"colour"`
	Location         string   `json:"location"`
	Mileage          string   `json:"mileage"` // space-grouped, e.g. "45 000"
	Description      string   `json:"description"`
	Created          string   `json:"created"` // original ISO-ish string from the feed
	CreatedTimestamp int64    `json:"created_timestamp"`
	Engine           string   `json:"engine"`
	IsArmoured       bool     `json:"is_armoured"`
}
