// Package cerner implements the vendor capability against Cerner-family
// backends. The wire format is the vendor's proprietary JSON API rather
// than a FHIR bundle, so conversion to the shared vendor model does more
// reshaping than the epic client.
package cerner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"medgate/internal/ehr"
	"medgate/internal/ehr/models"
	tenantmodels "medgate/internal/tenant/models"
)

const vendorName = "cerner"

// Config configures one Cerner client instance.
type Config struct {
	BaseURL    string
	ClientID   string
	Timeout    time.Duration
	HTTPClient ehr.HTTPDoer
}

// Client talks to one tenant's Cerner backend.
type Client struct {
	baseURL  string
	clientID string
	client   ehr.HTTPDoer
}

// New constructs a Cerner client.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		client:   client,
	}
}

// Factory returns a ehr.Factory binding tenant connection config to
// Cerner clients.
func Factory(defaultBaseURL string, timeout time.Duration) ehr.Factory {
	return func(tenant *tenantmodels.Tenant) (ehr.Service, error) {
		baseURL := tenant.Connection.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		if baseURL == "" {
			return nil, fmt.Errorf("tenant %s has no cerner base URL configured", tenant.Mnemonic)
		}
		return New(Config{
			BaseURL:  baseURL,
			ClientID: tenant.Connection.ClientID,
			Timeout:  timeout,
		}), nil
	}
}

var _ ehr.Service = (*Client)(nil)

// resultSet is the envelope every Cerner list endpoint returns. Records stay
// raw so each parsed model can carry its original payload.
type resultSet struct {
	Results []json.RawMessage `json:"results"`
}

func (c *Client) FindPatients(ctx context.Context, q models.PatientQuery) ([]models.Patient, error) {
	params := url.Values{}
	if q.MRN != "" {
		params.Set("mrn", q.MRN)
	}
	if q.FamilyName != "" {
		params.Set("last_name", q.FamilyName)
	}
	if q.GivenName != "" {
		params.Set("first_name", q.GivenName)
	}
	if q.BirthDate != "" {
		params.Set("dob", q.BirthDate)
	}

	raws, err := c.list(ctx, "patients", params)
	if err != nil {
		return nil, err
	}

	patients := make([]models.Patient, 0, len(raws))
	for _, raw := range raws {
		var wire patientRecord
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse patient record", err)
		}
		patients = append(patients, wire.toModel(raw))
	}
	return patients, nil
}

func (c *Client) FindAppointments(ctx context.Context, q models.AppointmentQuery) ([]models.Appointment, error) {
	params := url.Values{}
	params.Set("mrn", q.MRN)
	if q.Start != "" {
		params.Set("from", q.Start)
	}
	if q.End != "" {
		params.Set("to", q.End)
	}

	raws, err := c.list(ctx, "appointments", params)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(raws))
	for _, raw := range raws {
		var wire appointmentRecord
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse appointment record", err)
		}
		appointments = append(appointments, wire.toModel(raw))
	}
	return appointments, nil
}

func (c *Client) FindConditions(ctx context.Context, q models.ConditionQuery) ([]models.Condition, error) {
	params := url.Values{}
	params.Set("patient_id", q.PatientID)
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	raws, err := c.list(ctx, "problems", params)
	if err != nil {
		return nil, err
	}

	conditions := make([]models.Condition, 0, len(raws))
	for _, raw := range raws {
		var wire problemRecord
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse problem record", err)
		}
		cond, err := wire.toModel(raw)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

func (c *Client) FindPractitioner(ctx context.Context, q models.PractitionerQuery) (*models.Practitioner, error) {
	params := url.Values{}
	if q.ID != "" {
		params.Set("id", q.ID)
	} else {
		params.Set("provider_id", q.ProviderID)
	}

	raws, err := c.list(ctx, "providers", params)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, ehr.NewError(ehr.ErrorNotFound, vendorName, "no provider matched", nil)
	}

	var wire providerRecord
	if err := json.Unmarshal(raws[0], &wire); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse provider record", err)
	}
	practitioner := wire.toModel(raws[0])
	return &practitioner, nil
}

func (c *Client) SendMessage(ctx context.Context, msg models.OutboundMessage) (*models.MessageOutcome, error) {
	payload, err := json.Marshal(map[string]string{
		"patient_id":   msg.PatientID,
		"recipient_id": msg.RecipientID,
		"sender_id":    msg.SenderID,
		"message_type": msg.MessageType,
		"subject":      msg.Subject,
		"body":         msg.Body,
	})
	if err != nil {
		return nil, ehr.NewError(ehr.ErrorInternal, vendorName, "failed to marshal message", err)
	}

	body, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodPost, c.baseURL+"/messages", payload)
	if err != nil {
		return nil, err
	}

	var ack struct {
		MessageID string `json:"message_id"`
		State     string `json:"state"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse message acknowledgement", err)
	}
	return &models.MessageOutcome{ID: ack.MessageID, Status: ack.State}, nil
}

func (c *Client) SendNote(ctx context.Context, note models.OutboundNote) (*models.NoteOutcome, error) {
	payload, err := json.Marshal(map[string]string{
		"patient_id":   note.PatientID,
		"encounter_id": note.EncounterID,
		"author_id":    note.AuthorID,
		"note_type":    note.NoteType,
		"text":         note.Text,
	})
	if err != nil {
		return nil, ehr.NewError(ehr.ErrorInternal, vendorName, "failed to marshal note", err)
	}

	body, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodPost, c.baseURL+"/clinical-notes", payload)
	if err != nil {
		return nil, err
	}

	var ack struct {
		NoteID string `json:"note_id"`
		State  string `json:"state"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse note acknowledgement", err)
	}
	return &models.NoteOutcome{ID: ack.NoteID, Status: ack.State}, nil
}

func (c *Client) Health(ctx context.Context) error {
	_, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodGet, c.baseURL+"/status", nil)
	return err
}

func (c *Client) list(ctx context.Context, resource string, params url.Values) ([]json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())
	body, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var rs resultSet
	if err := json.Unmarshal(body, &rs); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse result set", err)
	}
	return rs.Results, nil
}
