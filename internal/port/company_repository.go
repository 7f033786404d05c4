package port

import (
	"context"

	"fakturo/internal/domain"
)

// CompanyRepository provides access to the single company profile row.
type CompanyRepository interface {
	// Get returns the profile, or domain.ErrNotFound when none exists yet.
	Get(ctx context.Context) (*domain.CompanyProfile, error)
	// Save upserts the single profile row in place; no history is retained.
	Save(ctx context.Context, profile *domain.CompanyProfile) error
}
