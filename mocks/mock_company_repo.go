package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fakturo/internal/domain"
)

// MockCompanyRepo is a mock implementation of port.CompanyRepository.
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Get(ctx context.Context) (*domain.CompanyProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyRepo) Save(ctx context.Context, profile *domain.CompanyProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
