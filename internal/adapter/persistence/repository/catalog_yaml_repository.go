package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

const defaultCatalogFile = "configs/catalog.yaml"

type catalogFile struct {
	Plans           []entities.Plan           `yaml:"plans"`
	Items           []entities.CatalogItem    `yaml:"items"`
	AttendeeOptions []entities.AttendeeOption `yaml:"attendee_options"`
}

// CatalogYAMLRepository reads the catalog from a YAML file on every Load, so
// edits to the file are picked up by the next session.
type CatalogYAMLRepository struct {
	path string
}

var _ interfaces.ICatalogRepository = (*CatalogYAMLRepository)(nil)

func NewCatalogYAMLRepository(path string) *CatalogYAMLRepository {
	if path == "" {
		path = getenvDefault("CATALOG_FILE", defaultCatalogFile)
	}
	return &CatalogYAMLRepository{path: path}
}

func (r *CatalogYAMLRepository) Load(_ context.Context) (entities.Catalog, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return entities.Catalog{}, err
	}
	c, err := ParseCatalogYAML(raw)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("%s: %w", r.path, err)
	}
	return c, nil
}

// ParseCatalogYAML decodes a catalog document. Unknown keys are rejected so
// typos in the file do not silently drop prices.
func ParseCatalogYAML(raw []byte) (entities.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return entities.Catalog{}, err
	}
	sortItems(f.Items)
	return entities.Catalog{Plans: f.Plans, Items: f.Items, AttendeeOptions: f.AttendeeOptions}, nil
}
