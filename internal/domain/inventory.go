package domain

type Inventory struct {
	InventoryID string            `json:"inventory_id"`
	VariantID   string            `json:"variant_id"`
	Quantity    InventoryQuantity `json:"quantity"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

type InventoryQuantity struct {
	Total    int64 `json:"total"`
	Sellable int64 `json:"sellable"`
	Reserved int64 `json:"reserved"`
}
