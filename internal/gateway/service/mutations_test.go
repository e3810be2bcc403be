package service

import (
	"context"

	"go.uber.org/mock/gomock"

	"medgate/internal/ehr"
	vendormodels "medgate/internal/ehr/models"
	"medgate/internal/gateway/models"
	domainerrors "medgate/pkg/domain-errors"
)

func (s *ServiceSuite) TestSendMessageDelocalizesAndDispatches() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	s.mockVendor.EXPECT().
		SendMessage(gomock.Any(), vendormodels.OutboundMessage{
			PatientID:   "p1",
			RecipientID: "pr1",
			Subject:     "results ready",
			Body:        "your labs are back",
		}).
		Return(&vendormodels.MessageOutcome{ID: "comm-1", Status: "completed"}, nil)

	result, err := s.service.SendMessage(context.Background(), s.authorized(), models.OutboundMessage{
		PatientID:   "epic-p1",
		RecipientID: "epic-pr1",
		Subject:     "results ready",
		Body:        "your labs are back",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Data, 1)
	s.Equal("comm-1", result.Data[0].ID)
	s.Equal("completed", result.Data[0].Status)
	s.Empty(result.Errors)
}

func (s *ServiceSuite) TestSendMessageGuardFailureRaises() {
	auth := Authorization{Requested: "fake", Authorized: strp("epic")}

	_, err := s.service.SendMessage(context.Background(), auth, models.OutboundMessage{
		PatientID:   "fake-p1",
		RecipientID: "fake-pr1",
		Body:        "hello",
	})
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeForbidden))
	s.Contains(err.Error(), "does not match authorized Tenant 'epic'")
}

func (s *ServiceSuite) TestSendMessageRequiresClaim() {
	_, err := s.service.SendMessage(context.Background(), Authorization{Requested: "epic"}, models.OutboundMessage{
		PatientID:   "epic-p1",
		RecipientID: "epic-pr1",
		Body:        "hello",
	})
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestSendMessageVendorFailureCollected() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	s.mockVendor.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Return(nil, ehr.NewError(ehr.ErrorRejected, "epic", "epic returned status 422", nil))

	result, err := s.service.SendMessage(context.Background(), s.authorized(), models.OutboundMessage{
		PatientID:   "epic-p1",
		RecipientID: "epic-pr1",
		Body:        "hello",
	})
	s.Require().NoError(err)
	s.Empty(result.Data)
	s.Require().Len(result.Errors, 1)
	s.Equal("epic returned status 422", result.Errors[0].Message)
}

func (s *ServiceSuite) TestSendMessageMalformedRecipient() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	result, err := s.service.SendMessage(context.Background(), s.authorized(), models.OutboundMessage{
		PatientID:   "epic-p1",
		RecipientID: "cerner-pr1",
		Body:        "hello",
	})
	s.Require().NoError(err)
	s.Empty(result.Data)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0].Message, "does not belong to Tenant")
}

func (s *ServiceSuite) TestSendNoteDispatches() {
	tenant := s.epicTenant()
	s.expectResolved(tenant)

	s.mockVendor.EXPECT().
		SendNote(gomock.Any(), vendormodels.OutboundNote{
			PatientID:   "p1",
			EncounterID: "e1",
			AuthorID:    "pr1",
			NoteType:    "progress",
			Text:        "patient improving",
		}).
		Return(&vendormodels.NoteOutcome{ID: "doc-1", Status: "current"}, nil)

	result, err := s.service.SendNote(context.Background(), s.authorized(), models.OutboundNote{
		PatientID:   "epic-p1",
		EncounterID: "e1",
		AuthorID:    "pr1",
		NoteType:    "progress",
		Text:        "patient improving",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Data, 1)
	s.Equal("doc-1", result.Data[0].ID)
}

func (s *ServiceSuite) TestSendNoteGuardFailureRaises() {
	_, err := s.service.SendNote(context.Background(), Authorization{Requested: "epic"}, models.OutboundNote{
		PatientID: "epic-p1",
		Text:      "note",
	})
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeUnauthorized))
}
