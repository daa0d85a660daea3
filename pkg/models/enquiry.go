package models

import "time"

// Enquiry is a contact-form submission, optionally tied to a listing.
type Enquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	ListingID string    `json:"listing_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
