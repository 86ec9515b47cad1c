package match

import (
	"context"

	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// repoCatalog adapts the product repository to the matcher's Catalog view.
type repoCatalog struct {
	products repository.ProductRepository
}

// NewRepositoryCatalog wraps the catalog read API for the matcher.
func NewRepositoryCatalog(products repository.ProductRepository) Catalog {
	return &repoCatalog{products: products}
}

func (c *repoCatalog) LookupExact(ctx context.Context, normalizedName, normalizedProvider string) (*Product, error) {
	row, err := c.products.LookupExact(ctx, normalizedName, normalizedProvider)
	if err != nil || row == nil {
		return nil, err
	}
	return &Product{ID: row.ID, Name: row.Name, Provider: row.Provider}, nil
}

func (c *repoCatalog) ListCandidates(ctx context.Context, normalizedProvider string) ([]Product, error) {
	rows, err := c.products.ListCandidates(ctx, normalizedProvider)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, Product{ID: r.ID, Name: r.Name, Provider: r.Provider})
	}
	return out, nil
}
