// Package ehr defines the capability interface every EHR backend client
// implements and the registry that binds a tenant's configuration to a
// concrete client. Clients are cached per tenant mnemonic and safe for
// concurrent use.
package ehr

import (
	"context"
	"fmt"
	"sync"

	"medgate/internal/ehr/models"
	tenantmodels "medgate/internal/tenant/models"
)

//go:generate mockgen -source=ehr.go -destination=mocks/ehr_mock.go -package=mocks

// Service is the universal capability interface all vendor backends implement.
//
// Implementations wrap an external EHR API behind a common surface so the
// gateway can dispatch operations without coupling to a protocol family.
// Any returned error should be a *Error with a normalized category; the
// message is surfaced to callers verbatim.
type Service interface {
	FindPatients(ctx context.Context, q models.PatientQuery) ([]models.Patient, error)
	FindAppointments(ctx context.Context, q models.AppointmentQuery) ([]models.Appointment, error)
	FindConditions(ctx context.Context, q models.ConditionQuery) ([]models.Condition, error)
	FindPractitioner(ctx context.Context, q models.PractitionerQuery) (*models.Practitioner, error)
	SendMessage(ctx context.Context, msg models.OutboundMessage) (*models.MessageOutcome, error)
	SendNote(ctx context.Context, note models.OutboundNote) (*models.NoteOutcome, error)

	// Health checks if the backend is reachable. Used by readiness probes.
	Health(ctx context.Context) error
}

// Factory constructs a Service bound to one tenant's connection config.
type Factory func(tenant *tenantmodels.Tenant) (Service, error)

// Registry resolves a tenant's configured vendor type to a Service bound to
// that tenant's connection. Register all factories during initialization;
// ForTenant is safe for concurrent use afterwards.
type Registry struct {
	mu        sync.RWMutex
	factories map[tenantmodels.VendorType]Factory
	clients   map[string]Service
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[tenantmodels.VendorType]Factory),
		clients:   make(map[string]Service),
	}
}

// Register adds a factory for a vendor type, replacing any existing one.
func (r *Registry) Register(vt tenantmodels.VendorType, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[vt] = f
}

// ForTenant returns the Service for the tenant's vendor, constructing and
// caching it on first use. The cache is keyed by mnemonic since connection
// config is immutable for the life of the process.
func (r *Registry) ForTenant(tenant *tenantmodels.Tenant) (Service, error) {
	r.mu.RLock()
	if svc, ok := r.clients[tenant.Mnemonic]; ok {
		r.mu.RUnlock()
		return svc, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if svc, ok := r.clients[tenant.Mnemonic]; ok {
		return svc, nil
	}

	factory, ok := r.factories[tenant.Vendor]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVendor, tenant.Vendor)
	}

	svc, err := factory(tenant)
	if err != nil {
		return nil, fmt.Errorf("constructing %s client for tenant %s: %w", tenant.Vendor, tenant.Mnemonic, err)
	}

	r.clients[tenant.Mnemonic] = svc
	return svc, nil
}
