package repositories

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/giovaniif/shopping-cart/domain/catalog"
)

var ErrCatalogEmpty = errors.New("catalog file lists no items")

type CatalogRepositoryMemory struct {
	catalog *catalog.Catalog
}

// NewCatalogRepositoryMemory serves c, or the default seed when c is nil.
func NewCatalogRepositoryMemory(c *catalog.Catalog) *CatalogRepositoryMemory {
	if c == nil {
		c = catalog.Default()
	}
	return &CatalogRepositoryMemory{catalog: c}
}

func (r *CatalogRepositoryMemory) GetCatalog() (*catalog.Catalog, error) {
	return r.catalog, nil
}

// catalogFile is the on-disk layout:
//
//	items:
//	  item1: "10.99"
//	  item2: 5.49
type catalogFile struct {
	Items map[string]string `yaml:"items"`
}

// CatalogRepositoryFile reads a YAML price list. The file is parsed once and cached.
type CatalogRepositoryFile struct {
	path    string
	catalog *catalog.Catalog
}

func NewCatalogRepositoryFile(path string) *CatalogRepositoryFile {
	return &CatalogRepositoryFile{path: path}
}

func (r *CatalogRepositoryFile) GetCatalog() (*catalog.Catalog, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	r.catalog = c
	return c, nil
}

func ParseCatalog(raw []byte) (*catalog.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, ErrCatalogEmpty
	}
	prices := make(map[string]decimal.Decimal, len(file.Items))
	for name, value := range file.Items {
		price, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("price of %s: %w", name, err)
		}
		prices[name] = price
	}
	return catalog.New(prices)
}
