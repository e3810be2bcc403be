package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	vendormocks "medgate/internal/ehr/mocks"
	"medgate/internal/gateway/service/mocks"
	tenantmodels "medgate/internal/tenant/models"
)

// ServiceSuite drives the orchestrator against mocked collaborators.
//
// Justification: the orchestrator's contract is entirely about how it
// composes the guard, the vendor capability, the translators, and the
// best-effort publisher under partial failure. Mocks let each failure mode
// be injected precisely, which the real clients cannot do deterministically.
type ServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTenants   *mocks.MockTenantLookup
	mockVendors   *mocks.MockVendorResolver
	mockPublisher *mocks.MockPublisher
	mockVendor    *vendormocks.MockService
	service       *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTenants = mocks.NewMockTenantLookup(s.ctrl)
	s.mockVendors = mocks.NewMockVendorResolver(s.ctrl)
	s.mockPublisher = mocks.NewMockPublisher(s.ctrl)
	s.mockVendor = vendormocks.NewMockService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(
		s.mockTenants,
		s.mockVendors,
		WithLogger(logger),
		WithPublisher(s.mockPublisher),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// epicTenant is the standard fixture tenant used across the suite.
func (s *ServiceSuite) epicTenant() *tenantmodels.Tenant {
	return &tenantmodels.Tenant{
		ID:       1,
		Mnemonic: "epic",
		Vendor:   tenantmodels.VendorEpic,
	}
}

// expectResolved wires the tenant lookup and vendor resolution happy path.
func (s *ServiceSuite) expectResolved(tenant *tenantmodels.Tenant) {
	s.mockTenants.EXPECT().GetByMnemonic(gomock.Any(), tenant.Mnemonic).Return(tenant, nil)
	s.mockVendors.EXPECT().ForTenant(tenant).Return(s.mockVendor, nil)
}

func strp(v string) *string { return &v }

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
