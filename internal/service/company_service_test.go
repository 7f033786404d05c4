package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fakturo/internal/domain"
	"fakturo/internal/service"
	"fakturo/mocks"
)

func setupCompany() (*mocks.MockCompanyRepo, service.CompanyService) {
	companies := new(mocks.MockCompanyRepo)
	svc := service.NewCompanyService(companies)
	return companies, svc
}

func TestSaveProfile_RequiresNameAndNIP(t *testing.T) {
	companies, svc := setupCompany()

	err := svc.SaveProfile(context.Background(), &domain.CompanyProfile{NIP: "5213017228"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	err = svc.SaveProfile(context.Background(), &domain.CompanyProfile{CompanyName: "Moja Firma"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	companies.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSaveProfile(t *testing.T) {
	companies, svc := setupCompany()

	profile := &domain.CompanyProfile{CompanyName: "Moja Firma", NIP: "5213017228"}
	companies.On("Save", mock.Anything, profile).Return(nil)

	require.NoError(t, svc.SaveProfile(context.Background(), profile))
	companies.AssertExpectations(t)
}

func TestUpdateZUSSettings_NoProfile(t *testing.T) {
	companies, svc := setupCompany()

	companies.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	_, err := svc.UpdateZUSSettings(context.Background(), &service.ZUSSettings{})
	assert.ErrorIs(t, err, domain.ErrNoCompanyProfile)
}

func TestUpdateZUSSettings_MergesOnlyProvidedFields(t *testing.T) {
	companies, svc := setupCompany()

	existingRate := 19.52
	profile := &domain.CompanyProfile{
		CompanyName:       "Moja Firma",
		NIP:               "5213017228",
		ZUSRetirementRate: &existingRate,
	}
	companies.On("Get", mock.Anything).Return(profile, nil)
	companies.On("Save", mock.Anything, mock.AnythingOfType("*domain.CompanyProfile")).Return(nil)

	base := 4000.0
	excluded := false
	updated, err := svc.UpdateZUSSettings(context.Background(), &service.ZUSSettings{
		BaseAmount:       &base,
		SicknessIncluded: &excluded,
	})
	require.NoError(t, err)

	require.True(t, updated.ZUSBaseAmount.Valid)
	assert.Equal(t, "4000", updated.ZUSBaseAmount.Decimal.String())
	require.NotNil(t, updated.ZUSSicknessIncluded)
	assert.False(t, *updated.ZUSSicknessIncluded)

	// Fields absent from the request keep their stored values.
	require.NotNil(t, updated.ZUSRetirementRate)
	assert.Equal(t, 19.52, *updated.ZUSRetirementRate)
	assert.Nil(t, updated.ZUSDisabilityRate)
}

func TestCurrentContributions_NoProfileUsesDefaults(t *testing.T) {
	companies, svc := setupCompany()

	companies.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	breakdown, err := svc.CurrentContributions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2240.84", breakdown.Total.StringFixed(2))
	assert.Equal(t, "461.66", breakdown.HealthInsurance.StringFixed(2))
}
