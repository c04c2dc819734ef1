package ingest

import (
	"github.com/yungbote/storefront-graph/internal/domain"
)

// BuildProductPlan maps one product record to its merge plan: the
// Product node, then one node+edge per category, collection, partner and
// brand reference. Reference nodes and classification edges are
// create-only.
func BuildProductPlan(p *domain.Product) (*Plan, error) {
	if p.ProductID == "" {
		return nil, &ValidationError{Family: FamilyProduct, Field: "product_id"}
	}

	plan := &Plan{Family: FamilyProduct, RecordID: p.ProductID}
	product := NodeRef{Label: "Product", KeyField: "product_id", KeyValue: p.ProductID}

	plan.node(product, map[string]any{
		"sku":                   p.SKU,
		"name":                  p.Name,
		"short_description":     p.ShortDescription,
		"description":           p.Description,
		"list_price":            rawString(p.ListPrice),
		"aggregate_stock":       rawString(p.AggregateStock),
		"physical_attributes":   rawString(p.PhysicalAttributes),
		"status":                p.Status,
		"deleted":               p.Deleted,
		"created_at":            p.CreatedAt,
		"marketing":             rawString(p.Marketing),
		"tags":                  p.Tags,
		"media":                 rawString(p.Media),
		"compliances":           rawString(p.Compliances),
		"handling_instructions": rawString(p.HandlingInstructions),
		"external_identifiers":  rawString(p.ExternalIdentifiers),
	}, nil)

	for _, c := range p.Categories {
		if c.CategoryID == "" {
			return nil, &ValidationError{Family: FamilyProduct, RecordID: p.ProductID, Field: "categories[].category_id"}
		}
		category := NodeRef{Label: "Category", KeyField: "category_id", KeyValue: c.CategoryID}
		plan.node(category, map[string]any{"name": c.Name, "slug": c.Slug}, nil)
		plan.edge(&EdgeMerge{From: product, To: category, Type: "BELONGS_TO"})
	}

	for _, c := range p.Collections {
		if c.CollectionID == "" {
			return nil, &ValidationError{Family: FamilyProduct, RecordID: p.ProductID, Field: "collections[].collection_id"}
		}
		collection := NodeRef{Label: "Collection", KeyField: "collection_id", KeyValue: c.CollectionID}
		plan.node(collection, map[string]any{"name": c.Name, "slug": c.Slug}, nil)
		plan.edge(&EdgeMerge{From: product, To: collection, Type: "PART_OF"})
	}

	for _, pa := range p.Partners {
		if pa.PartnerID == "" {
			return nil, &ValidationError{Family: FamilyProduct, RecordID: p.ProductID, Field: "partners[].partner_id"}
		}
		partner := NodeRef{Label: "Partner", KeyField: "partner_id", KeyValue: pa.PartnerID}
		plan.node(partner, map[string]any{"name": pa.Name, "type": pa.Type}, nil)
		plan.edge(&EdgeMerge{From: product, To: partner, Type: "SUPPLIED_BY"})
	}

	if p.Brand != nil {
		if p.Brand.ID == "" {
			return nil, &ValidationError{Family: FamilyProduct, RecordID: p.ProductID, Field: "brand.id"}
		}
		brand := NodeRef{Label: "Brand", KeyField: "brand_id", KeyValue: p.Brand.ID}
		plan.node(brand, map[string]any{"name": p.Brand.Name}, nil)
		plan.edge(&EdgeMerge{From: product, To: brand, Type: "BELONGS_TO"})
	}

	return plan, nil
}
