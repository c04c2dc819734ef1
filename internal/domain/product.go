package domain

import "encoding/json"

// Product is one record of the denormalized product export. Structured
// sub-documents without an identity of their own stay raw; they are
// projected onto the graph as JSON text.
type Product struct {
	ProductID            string          `json:"product_id"`
	SKU                  string          `json:"sku"`
	Name                 string          `json:"name"`
	ShortDescription     string          `json:"short_description"`
	Description          string          `json:"description"`
	ListPrice            json.RawMessage `json:"list_price"`
	AggregateStock       json.RawMessage `json:"aggregate_stock"`
	PhysicalAttributes   json.RawMessage `json:"physical_attributes"`
	Status               string          `json:"status"`
	Deleted              bool            `json:"deleted"`
	CreatedAt            string          `json:"created_at"`
	Marketing            json.RawMessage `json:"marketing"`
	Tags                 []string        `json:"tags"`
	Media                json.RawMessage `json:"media"`
	Compliances          json.RawMessage `json:"compliances"`
	HandlingInstructions json.RawMessage `json:"handling_instructions"`
	ExternalIdentifiers  json.RawMessage `json:"external_identifiers"`

	Categories  []CategoryRef   `json:"categories"`
	Collections []CollectionRef `json:"collections"`
	Partners    []PartnerRef    `json:"partners"`
	Brand       *BrandRef       `json:"brand"`
}

type CategoryRef struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type CollectionRef struct {
	CollectionID string `json:"collection_id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
}

type PartnerRef struct {
	PartnerID string `json:"partner_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// The export nests the brand with a bare "id", unlike the other refs.
type BrandRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Variant struct {
	VariantID           string          `json:"variant_id"`
	ProductID           string          `json:"product_id"`
	SKU                 string          `json:"sku"`
	Name                string          `json:"name"`
	Status              string          `json:"status"`
	Deleted             bool            `json:"deleted"`
	VariationType       string          `json:"variation_type"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
	ListPrice           json.RawMessage `json:"list_price"`
	Variations          json.RawMessage `json:"variations"`
	PhysicalAttributes  json.RawMessage `json:"physical_attributes"`
	Media               json.RawMessage `json:"media"`
	InventorySummary    json.RawMessage `json:"inventory_summary"`
	SalesChannels       json.RawMessage `json:"sales_channels"`
	ExternalIdentifiers json.RawMessage `json:"external_identifiers"`
}
