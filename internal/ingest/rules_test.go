package ingest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/yungbote/storefront-graph/internal/domain"
)

func TestBuildProductPlan_MissingIdentityKey(t *testing.T) {
	_, err := BuildProductPlan(&domain.Product{Name: "Trail Shoe"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "product_id" {
		t.Fatalf("expected field product_id, got %q", ve.Field)
	}
}

func TestBuildProductPlan_NodesPrecedeTheirEdges(t *testing.T) {
	plan, err := BuildProductPlan(&domain.Product{
		ProductID: "P1",
		Name:      "Trail Shoe",
		Categories: []domain.CategoryRef{
			{CategoryID: "C1", Name: "Shoes"},
			{CategoryID: "C2", Name: "Outdoor"},
		},
		Collections: []domain.CollectionRef{{CollectionID: "COL1", Name: "Summer"}},
		Partners:    []domain.PartnerRef{{PartnerID: "PA1", Name: "Acme", Type: "supplier"}},
		Brand:       &domain.BrandRef{ID: "B1", Name: "Peak"},
	})
	if err != nil {
		t.Fatalf("BuildProductPlan: %v", err)
	}
	if plan.RecordID != "P1" {
		t.Fatalf("expected record id P1, got %q", plan.RecordID)
	}

	// 1 product + (2 categories + 1 collection + 1 partner + 1 brand) nodes and edges
	if len(plan.Ops) != 1+2*5 {
		t.Fatalf("expected 11 ops, got %d", len(plan.Ops))
	}

	merged := map[string]bool{}
	for _, op := range plan.Ops {
		switch op := op.(type) {
		case *NodeMerge:
			merged[op.Ref.Label+"/"+op.Ref.KeyValue] = true
		case *EdgeMerge:
			if !merged[op.From.Label+"/"+op.From.KeyValue] {
				t.Fatalf("edge %s references %s/%s before its node merge", op.Type, op.From.Label, op.From.KeyValue)
			}
			if !merged[op.To.Label+"/"+op.To.KeyValue] {
				t.Fatalf("edge %s references %s/%s before its node merge", op.Type, op.To.Label, op.To.KeyValue)
			}
		}
	}
}

func TestBuildProductPlan_OpaqueProjection(t *testing.T) {
	plan, err := BuildProductPlan(&domain.Product{
		ProductID:          "P1",
		PhysicalAttributes: json.RawMessage(`{"weight_kg":0.4}`),
		Marketing:          json.RawMessage(`{"headline":"Run far"}`),
	})
	if err != nil {
		t.Fatalf("BuildProductPlan: %v", err)
	}
	node, ok := plan.Ops[0].(*NodeMerge)
	if !ok {
		t.Fatalf("expected first op to be the product node merge")
	}
	if got := node.OnCreate["physical_attributes"]; got != `{"weight_kg":0.4}` {
		t.Fatalf("expected opaque JSON text, got %v", got)
	}
	if got := node.OnCreate["marketing"]; got != `{"headline":"Run far"}` {
		t.Fatalf("expected opaque JSON text, got %v", got)
	}
	if len(node.OnMatch) != 0 {
		t.Fatalf("product node must be create-only, got on-match %v", node.OnMatch)
	}
}

func TestBuildProductPlan_FanOutElementMissingKey(t *testing.T) {
	_, err := BuildProductPlan(&domain.Product{
		ProductID:  "P1",
		Categories: []domain.CategoryRef{{Name: "Shoes"}},
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.RecordID != "P1" {
		t.Fatalf("expected record id P1 on the error, got %q", ve.RecordID)
	}
}

func TestBuildVariantPlan_RequiresParentProduct(t *testing.T) {
	plan, err := BuildVariantPlan(&domain.Variant{VariantID: "V1", ProductID: "P1"})
	if err != nil {
		t.Fatalf("BuildVariantPlan: %v", err)
	}
	var edge *EdgeMerge
	for _, op := range plan.Ops {
		if e, ok := op.(*EdgeMerge); ok && e.Type == "HAS" {
			edge = e
		}
	}
	if edge == nil {
		t.Fatalf("expected a HAS edge")
	}
	if !edge.RequireFrom {
		t.Fatalf("HAS edge must require the parent product")
	}
	if edge.From.Label != "Product" || edge.From.KeyValue != "P1" {
		t.Fatalf("unexpected HAS source: %+v", edge.From)
	}

	if _, err := BuildVariantPlan(&domain.Variant{VariantID: "V1"}); err == nil {
		t.Fatalf("expected error for missing product_id")
	}
}

func TestBuildOrderPlan_LinesAndPolicy(t *testing.T) {
	plan, err := BuildOrderPlan(&domain.Order{
		OrderID:    "O1",
		CustomerID: "CU1",
		OrderItems: []domain.OrderItem{{VariantID: "V1", Quantity: 2, LineItemTotal: 40.0}},
	})
	if err != nil {
		t.Fatalf("BuildOrderPlan: %v", err)
	}

	node, ok := plan.Ops[0].(*NodeMerge)
	if !ok || node.Ref.Label != "Order" {
		t.Fatalf("expected order node merge first, got %+v", plan.Ops[0])
	}
	if len(node.OnMatch) == 0 {
		t.Fatalf("order node properties must refresh on match")
	}

	var contains *EdgeMerge
	for _, op := range plan.Ops {
		if e, ok := op.(*EdgeMerge); ok && e.Type == "CONTAINS" {
			contains = e
		}
	}
	if contains == nil {
		t.Fatalf("expected a CONTAINS edge")
	}
	if contains.RequireTo {
		t.Fatalf("CONTAINS must create a placeholder variant, not require one")
	}
	if contains.OnCreate["quantity"] != int64(2) || contains.OnCreate["line_item_total"] != 40.0 {
		t.Fatalf("unexpected line properties: %v", contains.OnCreate)
	}
	if contains.OnMatch["quantity"] != int64(2) {
		t.Fatalf("line properties must refresh on match: %v", contains.OnMatch)
	}

	if _, err := BuildOrderPlan(&domain.Order{OrderID: "O2"}); err == nil {
		t.Fatalf("expected error for missing customer_id")
	}
}

func TestBuildInventoryPlan_EdgeCarriesCounts(t *testing.T) {
	plan, err := BuildInventoryPlan(&domain.Inventory{
		InventoryID: "I1",
		VariantID:   "V1",
		Quantity:    domain.InventoryQuantity{Total: 10, Sellable: 8, Reserved: 2},
	})
	if err != nil {
		t.Fatalf("BuildInventoryPlan: %v", err)
	}
	var rel *EdgeMerge
	for _, op := range plan.Ops {
		if e, ok := op.(*EdgeMerge); ok && e.Type == "RECORDS_STOCK_FOR" {
			rel = e
		}
	}
	if rel == nil {
		t.Fatalf("expected a RECORDS_STOCK_FOR edge")
	}
	if !rel.RequireTo {
		t.Fatalf("stock edge must require the variant")
	}
	if rel.OnMatch["sellable"] != int64(8) {
		t.Fatalf("stock counts must refresh on match: %v", rel.OnMatch)
	}
}

func TestBuildCustomerPlan_FanOut(t *testing.T) {
	plan, err := BuildCustomerPlan(&domain.Customer{
		CustomerID:     "CU1",
		Email:          "a@example.com",
		Addresses:      []domain.Address{{AddressID: "A1", City: "Oslo"}},
		PaymentMethods: []domain.PaymentMethod{{PaymentMethodID: "PM1", Type: "card"}},
		Wishlist:       []domain.WishlistItem{{VariantID: "V9"}},
	})
	if err != nil {
		t.Fatalf("BuildCustomerPlan: %v", err)
	}

	types := map[string]int{}
	for _, op := range plan.Ops {
		if e, ok := op.(*EdgeMerge); ok {
			types[e.Type]++
		}
	}
	if types["HAS_ADDRESS"] != 1 || types["HAS_PAYMENT_METHOD"] != 1 || types["WISHES_FOR"] != 1 {
		t.Fatalf("unexpected edge fan-out: %v", types)
	}
}
