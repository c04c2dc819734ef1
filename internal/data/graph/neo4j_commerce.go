package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/storefront-graph/internal/ingest"
	"github.com/yungbote/storefront-graph/internal/platform/logger"
	"github.com/yungbote/storefront-graph/internal/platform/neo4jdb"
)

// uniqueKeys lists every label the upsert rules merge on, with its
// identity key. EnsureSchema derives uniqueness constraints from it.
var uniqueKeys = map[string]string{
	"Product":        "product_id",
	"Variant":        "variant_id",
	"Category":       "category_id",
	"Collection":     "collection_id",
	"Partner":        "partner_id",
	"Brand":          "brand_id",
	"Order":          "order_id",
	"Shipment":       "shipment_id",
	"Inventory":      "inventory_id",
	"Customer":       "customer_id",
	"Address":        "address_id",
	"PaymentMethod":  "payment_method_id",
	"SalesChannel":   "channel_id",
	"BusinessEntity": "business_entity_id",
}

// CommerceStore executes merge plans against Neo4j: one write
// transaction per plan, statements in plan order, all-or-nothing.
type CommerceStore struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewCommerceStore(client *neo4jdb.Client, log *logger.Logger) *CommerceStore {
	return &CommerceStore{client: client, log: log.With("store", "CommerceGraph")}
}

// EnsureSchema creates uniqueness constraints per label. Best-effort;
// restricted users may lack schema privileges and merges still work
// without the constraints, just without store-level enforcement.
func (s *CommerceStore) EnsureSchema(ctx context.Context) {
	session := s.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.client.Database,
	})
	defer session.Close(ctx)

	for label, key := range uniqueKeys {
		q := fmt.Sprintf(
			"CREATE CONSTRAINT %s_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.%s IS UNIQUE",
			key, label, key,
		)
		if res, err := session.Run(ctx, q, nil); err != nil {
			s.log.Warn("schema init failed (continuing)", "label", label, "error", err)
		} else {
			_, _ = res.Consume(ctx)
		}
	}
}

func (s *CommerceStore) ExecutePlan(ctx context.Context, plan *ingest.Plan) error {
	session := s.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.client.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, op := range plan.Ops {
			switch op := op.(type) {
			case *ingest.NodeMerge:
				q, params := nodeMergeQuery(op)
				if err := runConsume(ctx, tx, q, params); err != nil {
					return nil, err
				}
			case *ingest.EdgeMerge:
				if op.RequireFrom {
					if err := s.requireNode(ctx, tx, op.From); err != nil {
						return nil, err
					}
				}
				if op.RequireTo {
					if err := s.requireNode(ctx, tx, op.To); err != nil {
						return nil, err
					}
				}
				q, params := edgeMergeQuery(op)
				if err := runConsume(ctx, tx, q, params); err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	if err == nil {
		return nil
	}

	var dep *ingest.DependencyMissingError
	if errors.As(err, &dep) {
		return dep
	}
	return &ingest.StoreError{Fatal: neo4j.IsConnectivityError(err), Err: err}
}

func (s *CommerceStore) requireNode(ctx context.Context, tx neo4j.ManagedTransaction, ref ingest.NodeRef) error {
	q, params := existsQuery(ref)
	res, err := tx.Run(ctx, q, params)
	if err != nil {
		return err
	}
	rec, err := res.Single(ctx)
	if err != nil {
		return err
	}
	count, _ := rec.Get("c")
	if n, ok := count.(int64); !ok || n == 0 {
		return &ingest.DependencyMissingError{Label: ref.Label, KeyField: ref.KeyField, KeyValue: ref.KeyValue}
	}
	return nil
}

func runConsume(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) error {
	res, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}
