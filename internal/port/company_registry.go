package port

import (
	"context"

	"fakturo/internal/domain"
)

// CompanyRegistry looks up company data in the national tax registry.
type CompanyRegistry interface {
	// LookupNIP resolves a 10-digit NIP to a registry entry. A malformed
	// NIP is a validation error; an unreachable registry surfaces as
	// domain.ErrRegistryUnavailable.
	LookupNIP(ctx context.Context, nip string) (*domain.RegistryEntry, error)
}
