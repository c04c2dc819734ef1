package domain

import "encoding/json"

type Order struct {
	OrderID            string          `json:"order_id"`
	OrderNumber        string          `json:"order_number"`
	Status             string          `json:"status"`
	Currency           string          `json:"currency"`
	CustomerID         string          `json:"customer_id"`
	BusinessEntityID   string          `json:"business_entity_id"`
	Totals             json.RawMessage `json:"totals"`
	Payments           json.RawMessage `json:"payments"`
	AppliedPromotions  json.RawMessage `json:"applied_promotions"`
	ExternalReferences json.RawMessage `json:"external_references"`
	Notes              string          `json:"notes"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
	OrderCreatedDate   string          `json:"order_created_date"`

	SalesChannel *SalesChannelRef `json:"sales_channel"`
	OrderItems   []OrderItem      `json:"order_items"`
	Shipments    []Shipment       `json:"shipments"`
}

type SalesChannelRef struct {
	ChannelID string `json:"channel_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}

type OrderItem struct {
	VariantID     string  `json:"variant_id"`
	Quantity      int64   `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	LineItemTotal float64 `json:"line_item_total"`
}

type Shipment struct {
	ShipmentID     string          `json:"shipment_id"`
	Status         string          `json:"status"`
	Carrier        string          `json:"carrier"`
	TrackingNumber string          `json:"tracking_number"`
	ShippedDate    string          `json:"shipped_date"`
	DeliveredDate  string          `json:"delivered_date"`
	Address        json.RawMessage `json:"address"`
	Items          []ShipmentItem  `json:"items"`
}

type ShipmentItem struct {
	VariantID string `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}
