package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/storefront-graph/internal/ingest"
)

func TestMemoryStore_MergeSemantics(t *testing.T) {
	store := NewMemoryStore()
	ref := ingest.NodeRef{Label: "Product", KeyField: "product_id", KeyValue: "P1"}

	plan := &ingest.Plan{Family: ingest.FamilyProduct, RecordID: "P1", Ops: []ingest.Op{
		&ingest.NodeMerge{Ref: ref, OnCreate: map[string]any{"name": "first"}},
	}}
	if err := store.ExecutePlan(context.Background(), plan); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}

	// Second merge: on-create ignored, on-match applied.
	plan2 := &ingest.Plan{Family: ingest.FamilyProduct, RecordID: "P1", Ops: []ingest.Op{
		&ingest.NodeMerge{Ref: ref, OnCreate: map[string]any{"name": "second"}, OnMatch: map[string]any{"status": "active"}},
	}}
	if err := store.ExecutePlan(context.Background(), plan2); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}

	props, ok := store.Node("Product", "P1")
	if !ok {
		t.Fatalf("node missing")
	}
	if props["name"] != "first" {
		t.Fatalf("on-create must not overwrite, got %v", props["name"])
	}
	if props["status"] != "active" {
		t.Fatalf("on-match must apply, got %v", props["status"])
	}
	if props["product_id"] != "P1" {
		t.Fatalf("identity key must be stored as a property, got %v", props["product_id"])
	}
}

func TestMemoryStore_RequiredEndpointMissing(t *testing.T) {
	store := NewMemoryStore()
	plan := &ingest.Plan{Family: ingest.FamilyVariant, RecordID: "V1", Ops: []ingest.Op{
		&ingest.NodeMerge{Ref: ingest.NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: "V1"}},
		&ingest.EdgeMerge{
			From:        ingest.NodeRef{Label: "Product", KeyField: "product_id", KeyValue: "P-missing"},
			To:          ingest.NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: "V1"},
			Type:        "HAS",
			RequireFrom: true,
		},
	}}

	err := store.ExecutePlan(context.Background(), plan)
	var dep *ingest.DependencyMissingError
	if !errors.As(err, &dep) {
		t.Fatalf("expected DependencyMissingError, got %v", err)
	}
	if dep.KeyValue != "P-missing" {
		t.Fatalf("unexpected dependency key: %+v", dep)
	}

	// The failed plan must leave nothing behind, the node merge included.
	if n := store.NodeCount("Variant"); n != 0 {
		t.Fatalf("failed plan leaked %d Variant nodes", n)
	}
}

func TestMemoryStore_PlaceholderEndpointCreated(t *testing.T) {
	store := NewMemoryStore()
	plan := &ingest.Plan{Family: ingest.FamilyOrder, RecordID: "O1", Ops: []ingest.Op{
		&ingest.NodeMerge{Ref: ingest.NodeRef{Label: "Order", KeyField: "order_id", KeyValue: "O1"}},
		&ingest.EdgeMerge{
			From:     ingest.NodeRef{Label: "Order", KeyField: "order_id", KeyValue: "O1"},
			To:       ingest.NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: "V1"},
			Type:     "CONTAINS",
			OnCreate: map[string]any{"quantity": int64(1)},
		},
	}}
	if err := store.ExecutePlan(context.Background(), plan); err != nil {
		t.Fatalf("ExecutePlan: %v", err)
	}

	props, ok := store.Node("Variant", "V1")
	if !ok {
		t.Fatalf("expected placeholder variant")
	}
	if len(props) != 1 || props["variant_id"] != "V1" {
		t.Fatalf("placeholder must carry only its identity key, got %v", props)
	}
}
