package graph

import (
	"context"
	"sync"

	"github.com/yungbote/storefront-graph/internal/ingest"
)

// MemoryStore applies merge plans to in-process maps with the same
// semantics as the Neo4j executor. It backs the test suite; nothing in
// the production path constructs one.
type MemoryStore struct {
	mu    sync.Mutex
	nodes map[string]*memoryNode
	edges map[string]*memoryEdge

	failErr error
}

type memoryNode struct {
	label    string
	keyField string
	keyValue string
	props    map[string]any
}

type memoryEdge struct {
	from    string
	to      string
	relType string
	props   map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes: make(map[string]*memoryNode),
		edges: make(map[string]*memoryEdge),
	}
}

// FailWith makes every subsequent ExecutePlan return err.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func nodeKey(label, keyValue string) string {
	return label + "|" + keyValue
}

func edgeKey(from, relType, to string) string {
	return from + "|" + relType + "|" + to
}

func (s *MemoryStore) ExecutePlan(ctx context.Context, plan *ingest.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}

	// Stage on copies so a failed plan leaves no partial writes.
	nodes := cloneNodes(s.nodes)
	edges := cloneEdges(s.edges)

	for _, op := range plan.Ops {
		switch op := op.(type) {
		case *ingest.NodeMerge:
			mergeNode(nodes, op.Ref, op.OnCreate, op.OnMatch)
		case *ingest.EdgeMerge:
			if op.RequireFrom {
				if _, ok := nodes[nodeKey(op.From.Label, op.From.KeyValue)]; !ok {
					return &ingest.DependencyMissingError{Label: op.From.Label, KeyField: op.From.KeyField, KeyValue: op.From.KeyValue}
				}
			}
			if op.RequireTo {
				if _, ok := nodes[nodeKey(op.To.Label, op.To.KeyValue)]; !ok {
					return &ingest.DependencyMissingError{Label: op.To.Label, KeyField: op.To.KeyField, KeyValue: op.To.KeyValue}
				}
			}
			mergeNode(nodes, op.From, nil, nil)
			mergeNode(nodes, op.To, nil, nil)
			ek := edgeKey(nodeKey(op.From.Label, op.From.KeyValue), op.Type, nodeKey(op.To.Label, op.To.KeyValue))
			if e, ok := edges[ek]; ok {
				for k, v := range op.OnMatch {
					e.props[k] = v
				}
			} else {
				props := make(map[string]any, len(op.OnCreate))
				for k, v := range op.OnCreate {
					props[k] = v
				}
				edges[ek] = &memoryEdge{
					from:    nodeKey(op.From.Label, op.From.KeyValue),
					to:      nodeKey(op.To.Label, op.To.KeyValue),
					relType: op.Type,
					props:   props,
				}
			}
		}
	}

	s.nodes = nodes
	s.edges = edges
	return nil
}

func mergeNode(nodes map[string]*memoryNode, ref ingest.NodeRef, onCreate, onMatch map[string]any) {
	nk := nodeKey(ref.Label, ref.KeyValue)
	if n, ok := nodes[nk]; ok {
		for k, v := range onMatch {
			n.props[k] = v
		}
		return
	}
	props := map[string]any{ref.KeyField: ref.KeyValue}
	for k, v := range onCreate {
		props[k] = v
	}
	nodes[nk] = &memoryNode{label: ref.Label, keyField: ref.KeyField, keyValue: ref.KeyValue, props: props}
}

func cloneNodes(in map[string]*memoryNode) map[string]*memoryNode {
	out := make(map[string]*memoryNode, len(in))
	for k, n := range in {
		props := make(map[string]any, len(n.props))
		for pk, pv := range n.props {
			props[pk] = pv
		}
		out[k] = &memoryNode{label: n.label, keyField: n.keyField, keyValue: n.keyValue, props: props}
	}
	return out
}

func cloneEdges(in map[string]*memoryEdge) map[string]*memoryEdge {
	out := make(map[string]*memoryEdge, len(in))
	for k, e := range in {
		props := make(map[string]any, len(e.props))
		for pk, pv := range e.props {
			props[pk] = pv
		}
		out[k] = &memoryEdge{from: e.from, to: e.to, relType: e.relType, props: props}
	}
	return out
}

// Node returns the property map of the node with the given label and
// identity key value.
func (s *MemoryStore) Node(label, keyValue string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[nodeKey(label, keyValue)]
	if !ok {
		return nil, false
	}
	props := make(map[string]any, len(n.props))
	for k, v := range n.props {
		props[k] = v
	}
	return props, true
}

func (s *MemoryStore) NodeCount(label string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, node := range s.nodes {
		if node.label == label {
			n++
		}
	}
	return n
}

// Edge returns the property map of the (from, type, to) edge.
func (s *MemoryStore) Edge(fromLabel, fromKey, relType, toLabel, toKey string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.edges[edgeKey(nodeKey(fromLabel, fromKey), relType, nodeKey(toLabel, toKey))]
	if !ok {
		return nil, false
	}
	props := make(map[string]any, len(e.props))
	for k, v := range e.props {
		props[k] = v
	}
	return props, true
}

func (s *MemoryStore) EdgeCount(relType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.edges {
		if e.relType == relType {
			n++
		}
	}
	return n
}
