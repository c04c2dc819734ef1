package graph

import (
	"fmt"
	"strings"

	"github.com/yungbote/storefront-graph/internal/ingest"
)

// Labels and key fields are fixed by the upsert rules; they are baked
// into query text while record values always travel as parameters.

func nodeMergeQuery(n *ingest.NodeMerge) (string, map[string]any) {
	var b strings.Builder
	fmt.Fprintf(&b, "MERGE (n:%s {%s: $key})", n.Ref.Label, n.Ref.KeyField)
	params := map[string]any{"key": n.Ref.KeyValue}
	if len(n.OnCreate) > 0 {
		b.WriteString("\nON CREATE SET n += $on_create")
		params["on_create"] = n.OnCreate
	}
	if len(n.OnMatch) > 0 {
		b.WriteString("\nON MATCH SET n += $on_match")
		params["on_match"] = n.OnMatch
	}
	return b.String(), params
}

func edgeMergeQuery(e *ingest.EdgeMerge) (string, map[string]any) {
	var b strings.Builder
	params := map[string]any{"from_key": e.From.KeyValue, "to_key": e.To.KeyValue}

	// A required endpoint is MATCHed (its absence was checked beforehand
	// in the same transaction); a placeholder endpoint is MERGEd into
	// existence carrying only its identity key.
	if e.RequireFrom {
		fmt.Fprintf(&b, "MATCH (a:%s {%s: $from_key})\n", e.From.Label, e.From.KeyField)
	} else {
		fmt.Fprintf(&b, "MERGE (a:%s {%s: $from_key})\n", e.From.Label, e.From.KeyField)
	}
	if e.RequireTo {
		fmt.Fprintf(&b, "MATCH (b:%s {%s: $to_key})\n", e.To.Label, e.To.KeyField)
	} else {
		fmt.Fprintf(&b, "MERGE (b:%s {%s: $to_key})\n", e.To.Label, e.To.KeyField)
	}
	fmt.Fprintf(&b, "MERGE (a)-[r:%s]->(b)", e.Type)
	if len(e.OnCreate) > 0 {
		b.WriteString("\nON CREATE SET r += $on_create")
		params["on_create"] = e.OnCreate
	}
	if len(e.OnMatch) > 0 {
		b.WriteString("\nON MATCH SET r += $on_match")
		params["on_match"] = e.OnMatch
	}
	return b.String(), params
}

func existsQuery(ref ingest.NodeRef) (string, map[string]any) {
	q := fmt.Sprintf("MATCH (n:%s {%s: $key}) RETURN count(n) AS c", ref.Label, ref.KeyField)
	return q, map[string]any{"key": ref.KeyValue}
}
