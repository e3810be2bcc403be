package service

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"medgate/internal/ehr"
	vendormodels "medgate/internal/ehr/models"
	"medgate/internal/publish"
)

func (s *ServiceSuite) authorized() Authorization {
	return Authorization{Requested: "epic", Authorized: strp("epic")}
}

func (s *ServiceSuite) TestFindPatientsTranslatesAndPublishes() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	raw1 := json.RawMessage(`{"id":"PatientFHIRID1"}`)
	raw2 := json.RawMessage(`{"id":"PatientFHIRID2"}`)
	s.mockVendor.EXPECT().
		FindPatients(gomock.Any(), vendormodels.PatientQuery{MRN: "MRN123"}).
		Return([]vendormodels.Patient{
			{ID: "PatientFHIRID1", BirthDate: strp("1984-03-02"), Raw: raw1},
			{ID: "PatientFHIRID2", Raw: raw2},
		}, nil)

	var published []publish.QueueMessage
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs []publish.QueueMessage) error {
			published = msgs
			return nil
		})

	result := s.service.FindPatients(context.Background(), s.authorized(), vendormodels.PatientQuery{MRN: "MRN123"})

	s.Empty(result.Errors)
	s.Require().Len(result.Data, 2)
	s.Equal("epic-PatientFHIRID1", result.Data[0].ID)
	s.Equal("epic-PatientFHIRID2", result.Data[1].ID)

	s.Require().Len(published, 2)
	s.Equal(vendormodels.ResourcePatient, published[0].ResourceType)
	s.Equal("epic", published[0].Tenant)
	s.JSONEq(string(raw1), string(published[0].Payload))
}

func (s *ServiceSuite) TestFindPatientsZeroResourcesIsNotAnError() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)
	s.mockVendor.EXPECT().
		FindPatients(gomock.Any(), gomock.Any()).
		Return([]vendormodels.Patient{}, nil)

	result := s.service.FindPatients(context.Background(), s.authorized(), vendormodels.PatientQuery{MRN: "MRN123"})

	s.Empty(result.Data)
	s.Empty(result.Errors)
	s.NotNil(result.Data)
	s.NotNil(result.Errors)
}

func (s *ServiceSuite) TestVendorFailureBecomesOneCollectedError() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)
	s.mockVendor.EXPECT().
		FindPatients(gomock.Any(), gomock.Any()).
		Return(nil, ehr.NewError(ehr.ErrorVendorOutage, "epic", "epic returned status 503", nil))

	result := s.service.FindPatients(context.Background(), s.authorized(), vendormodels.PatientQuery{MRN: "MRN123"})

	s.Empty(result.Data)
	s.Require().Len(result.Errors, 1)
	s.Equal("epic returned status 503", result.Errors[0].Message)
}

func (s *ServiceSuite) TestGuardFailureCollectedOnQueries() {
	auth := Authorization{Requested: "fake", Authorized: strp("epic")}

	result := s.service.FindPatients(context.Background(), auth, vendormodels.PatientQuery{MRN: "MRN123"})

	s.Empty(result.Data)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0].Message, "does not match authorized Tenant 'epic'")
}

func (s *ServiceSuite) TestPublishFailureNeverSurfaces() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	s.mockVendor.EXPECT().
		FindPatients(gomock.Any(), gomock.Any()).
		Return([]vendormodels.Patient{{ID: "p1", Raw: json.RawMessage(`{"id":"p1"}`)}}, nil)
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(ehr.NewError(ehr.ErrorVendorOutage, "kafka", "broker unreachable", nil))

	result := s.service.FindPatients(context.Background(), s.authorized(), vendormodels.PatientQuery{MRN: "MRN123"})

	s.Require().Len(result.Data, 1)
	s.Equal("epic-p1", result.Data[0].ID)
	s.Empty(result.Errors)
}

func (s *ServiceSuite) TestResponseOrderMatchesVendorOrder() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	appointments := []vendormodels.Appointment{
		{ID: "a3", Status: "booked", Raw: json.RawMessage(`{"id":"a3"}`)},
		{ID: "a1", Status: "booked", Raw: json.RawMessage(`{"id":"a1"}`)},
		{ID: "a2", Status: "cancelled", Raw: json.RawMessage(`{"id":"a2"}`)},
	}
	s.mockVendor.EXPECT().
		FindAppointments(gomock.Any(), vendormodels.AppointmentQuery{MRN: "MRN123", Start: "2024-01-01", End: "2024-02-01"}).
		Return(appointments, nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result := s.service.FindAppointments(context.Background(), s.authorized(),
		vendormodels.AppointmentQuery{MRN: "MRN123", Start: "2024-01-01", End: "2024-02-01"})

	s.Require().Len(result.Data, 3)
	s.Equal("epic-a3", result.Data[0].ID)
	s.Equal("epic-a1", result.Data[1].ID)
	s.Equal("epic-a2", result.Data[2].ID)
}

// brokenOnset embeds a legal shape so it satisfies the sealed Onset
// interface, while its own concrete type sits outside the declared set.
type brokenOnset struct{ vendormodels.OnsetDateTime }

func (s *ServiceSuite) TestTranslationFailureDropsOnlyThatResource() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	conditions := []vendormodels.Condition{
		{ID: "c1", Raw: json.RawMessage(`{"id":"c1"}`)},
		{ID: "c2", Onset: brokenOnset{}, Raw: json.RawMessage(`{"id":"c2"}`)},
		{ID: "c3", Raw: json.RawMessage(`{"id":"c3"}`)},
	}
	s.mockVendor.EXPECT().
		FindConditions(gomock.Any(), vendormodels.ConditionQuery{PatientID: "p1"}).
		Return(conditions, nil)

	// Only the two translatable conditions reach the queue.
	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs []publish.QueueMessage) error {
			s.Len(msgs, 2)
			return nil
		})

	result := s.service.FindConditions(context.Background(), s.authorized(), "epic-p1", "")

	s.Require().Len(result.Data, 2)
	s.Equal("epic-c1", result.Data[0].ID)
	s.Equal("epic-c3", result.Data[1].ID)
	s.Empty(result.Errors)
}

func (s *ServiceSuite) TestFindConditionsMalformedPatientID() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	result := s.service.FindConditions(context.Background(), s.authorized(), "cerner-p1", "")

	s.Empty(result.Data)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0].Message, "does not belong to Tenant")
}

func (s *ServiceSuite) TestGetPractitionerAllowsUnscopedCaller() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	s.mockVendor.EXPECT().
		FindPractitioner(gomock.Any(), vendormodels.PractitionerQuery{ID: "pr1"}).
		Return(&vendormodels.Practitioner{ID: "pr1", Raw: json.RawMessage(`{"id":"pr1"}`)}, nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	// No tenant claim: practitioner resolution is open to trusted M2M callers.
	result := s.service.GetPractitioner(context.Background(), Authorization{Requested: "epic"}, "epic-pr1", "")

	s.Require().Len(result.Data, 1)
	s.Equal("epic-pr1", result.Data[0].ID)
	s.Empty(result.Errors)
}

func (s *ServiceSuite) TestGetPractitionerByProviderID() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	s.mockVendor.EXPECT().
		FindPractitioner(gomock.Any(), vendormodels.PractitionerQuery{ProviderID: "NPI-42"}).
		Return(&vendormodels.Practitioner{ID: "pr7", Raw: json.RawMessage(`{"id":"pr7"}`)}, nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result := s.service.GetPractitioner(context.Background(), s.authorized(), "", "NPI-42")

	s.Require().Len(result.Data, 1)
	s.Equal("epic-pr7", result.Data[0].ID)
}
