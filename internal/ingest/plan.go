package ingest

import (
	"context"
	"encoding/json"
)

type Family string

const (
	FamilyProduct   Family = "product"
	FamilyVariant   Family = "variant"
	FamilyOrder     Family = "order"
	FamilyInventory Family = "inventory"
	FamilyCustomer  Family = "customer"
)

// Families is the ingestion order. It is a topological sort of the
// inter-family references: variants name products, orders name variants
// and customers, inventories name variants, customer wishlists name
// variants.
var Families = []Family{FamilyProduct, FamilyVariant, FamilyOrder, FamilyInventory, FamilyCustomer}

// NodeRef identifies one node by label and identity key.
type NodeRef struct {
	Label    string
	KeyField string
	KeyValue string
}

// Op is one step of a merge plan. Node merges must precede any edge
// merge that requires their endpoints.
type Op interface {
	op()
}

// NodeMerge is match-or-create on (Label, KeyField=KeyValue). OnCreate
// properties are set only when the node is first created; OnMatch
// properties overwrite on every ingestion.
type NodeMerge struct {
	Ref      NodeRef
	OnCreate map[string]any
	OnMatch  map[string]any
}

// EdgeMerge is match-or-create on (From, Type, To). A required endpoint
// must already exist in the graph; a non-required endpoint is created as
// a minimal placeholder node carrying only its identity key.
type EdgeMerge struct {
	From        NodeRef
	To          NodeRef
	Type        string
	RequireFrom bool
	RequireTo   bool
	OnCreate    map[string]any
	OnMatch     map[string]any
}

func (*NodeMerge) op() {}
func (*EdgeMerge) op() {}

// Plan is the ordered list of graph operations derived from one source
// record. All operations commit together or not at all.
type Plan struct {
	Family   Family
	RecordID string
	Ops      []Op
}

func (p *Plan) node(ref NodeRef, onCreate, onMatch map[string]any) {
	p.Ops = append(p.Ops, &NodeMerge{Ref: ref, OnCreate: onCreate, OnMatch: onMatch})
}

func (p *Plan) edge(e *EdgeMerge) {
	p.Ops = append(p.Ops, e)
}

// PlanExecutor is the boundary to the graph store. One call executes one
// plan in one transaction scope, statements in order, all-or-nothing.
type PlanExecutor interface {
	ExecutePlan(ctx context.Context, plan *Plan) error
}

// rawString projects a structured sub-document to its JSON text. Graph
// properties hold scalars only, so nested objects and arrays are stored
// opaque at the cost of in-graph queryability.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	return string(raw)
}
