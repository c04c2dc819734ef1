package ingest

import (
	"github.com/yungbote/storefront-graph/internal/domain"
)

// BuildInventoryPlan maps one inventory record: the Inventory node and
// the RECORDS_STOCK_FOR edge to its Variant. Stock counts live on both
// the node and the edge and refresh on every ingestion. The variant must
// already exist; stock for an unknown variant is a referential gap.
func BuildInventoryPlan(inv *domain.Inventory) (*Plan, error) {
	if inv.InventoryID == "" {
		return nil, &ValidationError{Family: FamilyInventory, Field: "inventory_id"}
	}
	if inv.VariantID == "" {
		return nil, &ValidationError{Family: FamilyInventory, RecordID: inv.InventoryID, Field: "variant_id"}
	}

	plan := &Plan{Family: FamilyInventory, RecordID: inv.InventoryID}
	inventory := NodeRef{Label: "Inventory", KeyField: "inventory_id", KeyValue: inv.InventoryID}

	counts := map[string]any{
		"total":    inv.Quantity.Total,
		"sellable": inv.Quantity.Sellable,
		"reserved": inv.Quantity.Reserved,
	}

	props := map[string]any{
		"total":      inv.Quantity.Total,
		"sellable":   inv.Quantity.Sellable,
		"reserved":   inv.Quantity.Reserved,
		"created_at": inv.CreatedAt,
		"updated_at": inv.UpdatedAt,
	}
	plan.node(inventory, props, props)

	plan.edge(&EdgeMerge{
		From:      inventory,
		To:        NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: inv.VariantID},
		Type:      "RECORDS_STOCK_FOR",
		RequireTo: true,
		OnCreate:  counts,
		OnMatch:   counts,
	})

	return plan, nil
}
