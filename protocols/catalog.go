package protocols

import "github.com/giovaniif/shopping-cart/domain/catalog"

type CatalogRepository interface {
	GetCatalog() (*catalog.Catalog, error)
}
