package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/gen/ent"
	entproduct "github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
)

// ProductRepository is the read-only view of the canonical product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InsuranceProduct, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// LookupExact resolves a normalized (name, provider) pair. Returns nil
	// without error when there is no single unambiguous hit.
	LookupExact(ctx context.Context, normalizedName, normalizedProvider string) (*ent.InsuranceProduct, error)
	// ListCandidates returns catalog rows for fuzzy scoring, scoped to a
	// normalized provider when one is given; catalog-wide otherwise.
	ListCandidates(ctx context.Context, normalizedProvider string) ([]*ent.InsuranceProduct, error)
}

type productRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProductRepository(entc *ent.Client, logger *slog.Logger) ProductRepository {
	return &productRepo{ent: entc, logger: logger}
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InsuranceProduct, error) {
	return r.ent.InsuranceProduct.Get(ctx, id)
}

func (r *productRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.InsuranceProduct.Query().Where(entproduct.ID(id)).Exist(ctx)
}

func (r *productRepo) LookupExact(ctx context.Context, normalizedName, normalizedProvider string) (*ent.InsuranceProduct, error) {
	rows, err := r.ent.InsuranceProduct.Query().
		Where(
			entproduct.NormalizedName(normalizedName),
			entproduct.NormalizedProvider(normalizedProvider),
		).
		Limit(2).
		All(ctx)
	if err != nil {
		r.logger.Error("exact product lookup failed", "name", normalizedName, "provider", normalizedProvider, "error", err)
		return nil, err
	}
	if len(rows) != 1 {
		// zero hits or an ambiguous pair; let fuzzy matching take over
		return nil, nil
	}
	return rows[0], nil
}

func (r *productRepo) ListCandidates(ctx context.Context, normalizedProvider string) ([]*ent.InsuranceProduct, error) {
	q := r.ent.InsuranceProduct.Query()
	if normalizedProvider != "" {
		q = q.Where(entproduct.NormalizedProvider(normalizedProvider))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("candidate listing failed", "provider", normalizedProvider, "error", err)
		return nil, err
	}
	return rows, nil
}
