package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest names the export file of each entity family. Paths are
// relative to Dir, which defaults to the manifest's own directory.
//
//	database: knowledge-graph
//	files:
//	  products: products.json
//	  variants: variants.json
//	  orders: orders.json
//	  inventories: inventories.json
//	  customers: customers.json
type Manifest struct {
	Database string      `yaml:"database"`
	Dir      string      `yaml:"dir"`
	Files    FamilyFiles `yaml:"files"`
}

type FamilyFiles struct {
	Products    string `yaml:"products"`
	Variants    string `yaml:"variants"`
	Orders      string `yaml:"orders"`
	Inventories string `yaml:"inventories"`
	Customers   string `yaml:"customers"`
}

func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("source: parse manifest %s: %w", path, err)
	}
	if strings.TrimSpace(m.Dir) == "" {
		m.Dir = filepath.Dir(path)
	}
	if m.Files.Products == "" {
		m.Files.Products = "products.json"
	}
	if m.Files.Variants == "" {
		m.Files.Variants = "variants.json"
	}
	if m.Files.Orders == "" {
		m.Files.Orders = "orders.json"
	}
	if m.Files.Inventories == "" {
		m.Files.Inventories = "inventories.json"
	}
	if m.Files.Customers == "" {
		m.Files.Customers = "customers.json"
	}
	return &m, nil
}

func (m *Manifest) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.Dir, name)
}
