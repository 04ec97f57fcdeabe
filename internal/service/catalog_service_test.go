package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

func TestCatalogLookupsDegradeToFallbacks(t *testing.T) {
	svc := NewCatalogService(&apiStub{
		technicians: func(context.Context) ([]domain.Technician, error) {
			return nil, errors.New("down")
		},
		vendors: func(context.Context) ([]domain.Vendor, error) {
			return nil, errors.New("down")
		},
		products: func(context.Context) ([]domain.Product, error) {
			return nil, errors.New("down")
		},
	}, zap.NewNop())

	ctx := context.Background()

	techs := svc.Technicians(ctx)
	require.Len(t, techs, 1)
	assert.Equal(t, FallbackAuthor, techs[0].Name)

	vendors := svc.Vendors(ctx)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Approved Vendor", vendors[0].Name)

	products := svc.Products(ctx)
	require.Len(t, products, 4)
	for _, p := range products {
		assert.Equal(t, "Hardware", p.Category)
	}
}

func TestCatalogLookupsPassThroughOnSuccess(t *testing.T) {
	want := []domain.Technician{{ID: 4, Name: "Lee Wong"}}
	svc := NewCatalogService(&apiStub{
		technicians: func(context.Context) ([]domain.Technician, error) {
			return want, nil
		},
	}, zap.NewNop())

	assert.Equal(t, want, svc.Technicians(context.Background()))
}

func TestHardwareAssignmentOptionsCombinesBothLookups(t *testing.T) {
	svc := NewCatalogService(&apiStub{
		technicians: func(context.Context) ([]domain.Technician, error) {
			return []domain.Technician{{ID: 9, Name: "Hardware Tech"}}, nil
		},
		vendors: func(context.Context) ([]domain.Vendor, error) {
			return nil, errors.New("down")
		},
	}, zap.NewNop())

	opts := svc.HardwareAssignmentOptions(context.Background())

	require.Len(t, opts.Technicians, 1)
	assert.Equal(t, "Hardware Tech", opts.Technicians[0].Name)
	assert.Equal(t, fallbackVendors, opts.Vendors)
}
