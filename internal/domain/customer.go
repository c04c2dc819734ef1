package domain

import "encoding/json"

type Customer struct {
	CustomerID             string          `json:"customer_id"`
	Email                  string          `json:"email"`
	FirstName              string          `json:"first_name"`
	LastName               string          `json:"last_name"`
	Phone                  string          `json:"phone"`
	CustomerSegment        string          `json:"customer_segment"`
	MarketingConsent       bool            `json:"marketing_consent"`
	PersonalizationDetails json.RawMessage `json:"personalization_details"`
	Notes                  string          `json:"notes"`
	Status                 string          `json:"status"`
	Deleted                bool            `json:"deleted"`
	CreatedAt              string          `json:"created_at"`
	UpdatedAt              string          `json:"updated_at"`

	Addresses      []Address       `json:"addresses"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Wishlist       []WishlistItem  `json:"wishlist"`
}

type Address struct {
	AddressID  string `json:"address_id"`
	Type       string `json:"type"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type PaymentMethod struct {
	PaymentMethodID string `json:"payment_method_id"`
	Type            string `json:"type"`
	Brand           string `json:"brand"`
	LastFour        string `json:"last_four"`
	ExpiryMonth     int    `json:"expiry_month"`
	ExpiryYear      int    `json:"expiry_year"`
}

type WishlistItem struct {
	VariantID string `json:"variant_id"`
	AddedAt   string `json:"added_at"`
}
