package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// Static fallbacks for lookup-style fetches. These screens stay usable
// when the backend lookup endpoints are down.
var (
	fallbackTechnicians = []domain.Technician{
		{ID: 0, Name: FallbackAuthor},
	}
	fallbackVendors = []domain.Vendor{
		{ID: 0, Name: "Approved Vendor"},
	}
	fallbackProducts = []domain.Product{
		{ID: 1, Name: "Laptop", Category: "Hardware"},
		{ID: 2, Name: "Desktop", Category: "Hardware"},
		{ID: 3, Name: "Monitor", Category: "Hardware"},
		{ID: 4, Name: "Printer", Category: "Hardware"},
	}
)

// CatalogService serves lookup tables: clients, products, technicians
// and vendors. Every fetch degrades to a static fallback with a logged
// warning instead of failing the screen.
type CatalogService struct {
	api    backend.API
	logger *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(api backend.API, logger *zap.Logger) *CatalogService {
	return &CatalogService{api: api, logger: logger}
}

// Clients lists tenants, degrading to an empty list.
func (s *CatalogService) Clients(ctx context.Context) []domain.Client {
	clients, err := s.api.Clients(ctx)
	if err != nil {
		s.logger.Warn("client lookup failed", zap.Error(err))
		return []domain.Client{}
	}
	return clients
}

// Products lists the catalogue, degrading to static entries.
func (s *CatalogService) Products(ctx context.Context) []domain.Product {
	products, err := s.api.Products(ctx)
	if err != nil {
		s.logger.Warn("product lookup failed, using fallback", zap.Error(err))
		return fallbackProducts
	}
	return products
}

// Technicians lists assignable technicians, degrading to the fallback.
func (s *CatalogService) Technicians(ctx context.Context) []domain.Technician {
	techs, err := s.api.Technicians(ctx)
	if err != nil {
		s.logger.Warn("technician lookup failed, using fallback", zap.Error(err))
		return fallbackTechnicians
	}
	return techs
}

// HardwareTechnicians lists hardware-capable technicians, degrading to
// the fallback.
func (s *CatalogService) HardwareTechnicians(ctx context.Context) []domain.Technician {
	techs, err := s.api.HardwareTechnicians(ctx)
	if err != nil {
		s.logger.Warn("hardware technician lookup failed, using fallback", zap.Error(err))
		return fallbackTechnicians
	}
	return techs
}

// Vendors lists hardware vendors, degrading to the fallback.
func (s *CatalogService) Vendors(ctx context.Context) []domain.Vendor {
	vendors, err := s.api.Vendors(ctx)
	if err != nil {
		s.logger.Warn("vendor lookup failed, using fallback", zap.Error(err))
		return fallbackVendors
	}
	return vendors
}

// HardwareOptions bundles the two lookups backing the hardware
// assignment form.
type HardwareOptions struct {
	Technicians []domain.Technician
	Vendors     []domain.Vendor
}

// HardwareAssignmentOptions fetches hardware technicians and vendors
// concurrently; both lookups already degrade individually.
func (s *CatalogService) HardwareAssignmentOptions(ctx context.Context) HardwareOptions {
	var opts HardwareOptions
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		opts.Technicians = s.HardwareTechnicians(ctx)
	}()
	go func() {
		defer wg.Done()
		opts.Vendors = s.Vendors(ctx)
	}()
	wg.Wait()
	return opts
}
