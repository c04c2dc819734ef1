package ingest

import (
	"github.com/yungbote/storefront-graph/internal/domain"
)

// BuildVariantPlan maps one variant record: the Variant node and the
// HAS edge from its parent Product. The parent must already exist;
// variants are ingested after products and a dangling product_id is a
// referential gap, not an occasion to invent a product.
func BuildVariantPlan(v *domain.Variant) (*Plan, error) {
	if v.VariantID == "" {
		return nil, &ValidationError{Family: FamilyVariant, Field: "variant_id"}
	}
	if v.ProductID == "" {
		return nil, &ValidationError{Family: FamilyVariant, RecordID: v.VariantID, Field: "product_id"}
	}

	plan := &Plan{Family: FamilyVariant, RecordID: v.VariantID}
	variant := NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: v.VariantID}

	plan.node(variant, map[string]any{
		"sku":                  v.SKU,
		"name":                 v.Name,
		"status":               v.Status,
		"deleted":              v.Deleted,
		"variation_type":       v.VariationType,
		"created_at":           v.CreatedAt,
		"updated_at":           v.UpdatedAt,
		"list_price":           rawString(v.ListPrice),
		"variations":           rawString(v.Variations),
		"physical_attributes":  rawString(v.PhysicalAttributes),
		"media":                rawString(v.Media),
		"inventory_summary":    rawString(v.InventorySummary),
		"sales_channels":       rawString(v.SalesChannels),
		"external_identifiers": rawString(v.ExternalIdentifiers),
	}, nil)

	plan.edge(&EdgeMerge{
		From:        NodeRef{Label: "Product", KeyField: "product_id", KeyValue: v.ProductID},
		To:          variant,
		Type:        "HAS",
		RequireFrom: true,
	})

	return plan, nil
}
