package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yungbote/storefront-graph/internal/domain"
	"github.com/yungbote/storefront-graph/internal/ingest"
	"github.com/yungbote/storefront-graph/internal/platform/logger"
)

// Load reads and decodes every family named by the manifest. A missing
// file fails (wrapping os.ErrNotExist); an empty file or empty JSON
// array is a valid empty family.
func (m *Manifest) Load(log *logger.Logger) (*ingest.Batch, error) {
	batch := &ingest.Batch{}
	var err error

	if batch.Products, err = loadRecords[domain.Product](m.path(m.Files.Products)); err != nil {
		return nil, err
	}
	if batch.Variants, err = loadRecords[domain.Variant](m.path(m.Files.Variants)); err != nil {
		return nil, err
	}
	if batch.Orders, err = loadRecords[domain.Order](m.path(m.Files.Orders)); err != nil {
		return nil, err
	}
	if batch.Inventories, err = loadRecords[domain.Inventory](m.path(m.Files.Inventories)); err != nil {
		return nil, err
	}
	if batch.Customers, err = loadRecords[domain.Customer](m.path(m.Files.Customers)); err != nil {
		return nil, err
	}

	log.Info("source records loaded",
		"products", len(batch.Products),
		"variants", len(batch.Variants),
		"orders", len(batch.Orders),
		"inventories", len(batch.Inventories),
		"customers", len(batch.Customers),
	)
	return batch, nil
}

func loadRecords[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", path, err)
	}
	return records, nil
}
