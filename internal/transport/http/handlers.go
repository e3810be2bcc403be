package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	vendormodels "medgate/internal/ehr/models"
	gwmodels "medgate/internal/gateway/models"
	"medgate/internal/gateway/service"
	"medgate/internal/platform/middleware"
	domainerrors "medgate/pkg/domain-errors"
	"medgate/pkg/platform/httputil"
)

//go:generate mockgen -source=handlers.go -destination=mocks/gateway_mock.go -package=mocks GatewayService

// GatewayService is the slice of the gateway orchestrator the transport
// layer consumes.
type GatewayService interface {
	FindPatients(ctx context.Context, auth service.Authorization, q vendormodels.PatientQuery) gwmodels.Result[gwmodels.Patient]
	FindAppointments(ctx context.Context, auth service.Authorization, q vendormodels.AppointmentQuery) gwmodels.Result[gwmodels.Appointment]
	FindConditions(ctx context.Context, auth service.Authorization, patientID, category string) gwmodels.Result[gwmodels.Condition]
	GetPractitioner(ctx context.Context, auth service.Authorization, localizedID, providerID string) gwmodels.Result[gwmodels.Practitioner]
	SendMessage(ctx context.Context, auth service.Authorization, msg gwmodels.OutboundMessage) (gwmodels.Result[gwmodels.MessageOutcome], error)
	SendNote(ctx context.Context, auth service.Authorization, note gwmodels.OutboundNote) (gwmodels.Result[gwmodels.NoteOutcome], error)
}

// Handler delegates HTTP requests to the gateway service.
type Handler struct {
	gateway GatewayService
	logger  *slog.Logger
}

func NewHandler(gateway GatewayService, logger *slog.Logger) *Handler {
	return &Handler{gateway: gateway, logger: logger}
}

// authorization builds the per-request authorization context: the tenant
// the URL asks about plus the tenant claim the auth middleware extracted.
func authorization(r *http.Request) service.Authorization {
	return service.Authorization{
		Requested:  chi.URLParam(r, "mnemonic"),
		Authorized: middleware.GetAuthorizedTenant(r.Context()),
	}
}

func (h *Handler) handleFindPatients(w http.ResponseWriter, r *http.Request) {
	q := vendormodels.PatientQuery{
		MRN:        r.URL.Query().Get("mrn"),
		FamilyName: r.URL.Query().Get("family"),
		GivenName:  r.URL.Query().Get("given"),
		BirthDate:  r.URL.Query().Get("birthdate"),
	}
	if q.MRN == "" && (q.FamilyName == "" || q.BirthDate == "") {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput,
			"either mrn or family and birthdate are required"))
		return
	}

	result := h.gateway.FindPatients(r.Context(), authorization(r), q)
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleFindAppointments(w http.ResponseWriter, r *http.Request) {
	q := vendormodels.AppointmentQuery{
		MRN:   r.URL.Query().Get("mrn"),
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if q.MRN == "" {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "mrn is required"))
		return
	}

	result := h.gateway.FindAppointments(r.Context(), authorization(r), q)
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleFindConditions(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	category := r.URL.Query().Get("category")

	result := h.gateway.FindConditions(r.Context(), authorization(r), patientID, category)
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetPractitioner(w http.ResponseWriter, r *http.Request) {
	result := h.gateway.GetPractitioner(r.Context(), authorization(r), chi.URLParam(r, "practitionerID"), "")
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetPractitionerByProvider(w http.ResponseWriter, r *http.Request) {
	providerID := r.URL.Query().Get("provider_id")
	if providerID == "" {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput, "provider_id is required"))
		return
	}

	result := h.gateway.GetPractitioner(r.Context(), authorization(r), "", providerID)
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var msg gwmodels.OutboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}
	if msg.PatientID == "" || msg.RecipientID == "" || msg.Body == "" {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput,
			"patientId, recipientId and body are required"))
		return
	}

	result, err := h.gateway.SendMessage(r.Context(), authorization(r), msg)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleSendNote(w http.ResponseWriter, r *http.Request) {
	var note gwmodels.OutboundNote
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}
	if note.PatientID == "" || note.Text == "" {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeInvalidInput,
			"patientId and text are required"))
		return
	}

	result, err := h.gateway.SendNote(r.Context(), authorization(r), note)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
