package ingest

import (
	"context"
	"time"

	"github.com/yungbote/storefront-graph/internal/domain"
	"github.com/yungbote/storefront-graph/internal/platform/logger"
)

// Batch holds the five record sequences of one ingestion run, already
// decoded by the source loader. An empty family is a valid no-op.
type Batch struct {
	Products    []domain.Product
	Variants    []domain.Variant
	Orders      []domain.Order
	Inventories []domain.Inventory
	Customers   []domain.Customer
}

// Ingestor applies per-record merge plans through a PlanExecutor in the
// fixed family order. Execution is strictly sequential: the family order
// is a hard dependency chain and parallel merges would race on shared
// reference nodes.
type Ingestor struct {
	exec PlanExecutor
	log  *logger.Logger
}

func New(exec PlanExecutor, log *logger.Logger) *Ingestor {
	return &Ingestor{exec: exec, log: log.With("component", "Ingestor")}
}

// IngestAll runs one batch. A validation or dependency failure aborts
// only that record's transaction and is recorded; a fatal store error
// (lost connectivity) ends the run, returning the partial report
// alongside the error.
func (in *Ingestor) IngestAll(ctx context.Context, batch *Batch) (*Report, error) {
	report := newReport()
	in.log.Info("ingestion started", "run_id", report.RunID.String())

	err := in.runFamily(ctx, report, FamilyProduct, len(batch.Products), func(i int) (*Plan, error) {
		return BuildProductPlan(&batch.Products[i])
	})
	if err == nil {
		err = in.runFamily(ctx, report, FamilyVariant, len(batch.Variants), func(i int) (*Plan, error) {
			return BuildVariantPlan(&batch.Variants[i])
		})
	}
	if err == nil {
		err = in.runFamily(ctx, report, FamilyOrder, len(batch.Orders), func(i int) (*Plan, error) {
			return BuildOrderPlan(&batch.Orders[i])
		})
	}
	if err == nil {
		err = in.runFamily(ctx, report, FamilyInventory, len(batch.Inventories), func(i int) (*Plan, error) {
			return BuildInventoryPlan(&batch.Inventories[i])
		})
	}
	if err == nil {
		err = in.runFamily(ctx, report, FamilyCustomer, len(batch.Customers), func(i int) (*Plan, error) {
			return BuildCustomerPlan(&batch.Customers[i])
		})
	}

	report.FinishedAt = time.Now().UTC()
	in.log.Info("ingestion finished",
		"run_id", report.RunID.String(),
		"succeeded", report.TotalSucceeded(),
		"failed", report.TotalFailed(),
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)
	return report, err
}

func (in *Ingestor) runFamily(ctx context.Context, report *Report, family Family, count int, build func(i int) (*Plan, error)) error {
	for i := 0; i < count; i++ {
		plan, err := build(i)
		if err != nil {
			report.fail(family, failureRecordID(err), err)
			in.log.Warn("record rejected", "family", string(family), "error", err)
			continue
		}
		if err := in.exec.ExecutePlan(ctx, plan); err != nil {
			report.fail(family, plan.RecordID, err)
			if IsFatal(err) {
				in.log.Error("store unreachable, aborting batch", "family", string(family), "record_id", plan.RecordID, "error", err)
				return err
			}
			in.log.Warn("record failed", "family", string(family), "record_id", plan.RecordID, "error", err)
			continue
		}
		report.succeed(family)
		in.log.Info("record ingested", "family", string(family), "record_id", plan.RecordID)
	}
	return nil
}
