// Package epic implements the vendor capability against Epic-family FHIR R4
// backends. Responses arrive as searchset bundles; each entry's resource
// body is kept verbatim for downstream indexing.
package epic

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

const vendorName = "epic"

// Config configures one Epic client instance.
type Config struct {
	BaseURL    string
	ClientID   string
	Timeout    time.Duration
	HTTPClient ehr.HTTPDoer
}

// Client talks to one tenant's Epic backend.
type Client struct {
	baseURL  string
	clientID string
	client   ehr.HTTPDoer
}

// New constructs an Epic client.
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

// Factory returns a ehr.Factory binding tenant connection config to Epic
// clients. The base URL falls back to defaultBaseURL when the tenant carries
// none of its own.
func Factory(defaultBaseURL string, timeout time.Duration) ehr.Factory {
	return func(tenant *tenantmodels.Tenant) (ehr.Service, error) {
		baseURL := tenant.Connection.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		if baseURL == "" {
			return nil, fmt.Errorf("tenant %s has no epic base URL configured", tenant.Mnemonic)
		}
		return New(Config{
			BaseURL:  baseURL,
			ClientID: tenant.Connection.ClientID,
			Timeout:  timeout,
		}), nil
	}
}

var _ ehr.Service = (*Client)(nil)

// bundle is the FHIR searchset envelope. Resource bodies stay raw so each
// parsed model can carry its original payload.
type bundle struct {
	Entry []struct {
		Resource json.RawMessage `json:"resource"`
	} `json:"entry"`
}

func (c *Client) FindPatients(ctx context.Context, q models.PatientQuery) ([]models.Patient, error) {
	params := url.Values{}
	if q.MRN != "" {
		params.Set("identifier", q.MRN)
	}
	if q.FamilyName != "" {
		params.Set("family", q.FamilyName)
	}
	if q.GivenName != "" {
		params.Set("given", q.GivenName)
	}
	if q.BirthDate != "" {
		params.Set("birthdate", q.BirthDate)
	}

	body, err := c.get(ctx, "Patient", params)
	if err != nil {
		return nil, err
	}

	raws, err := c.entries(body)
	if err != nil {
		return nil, err
	}

	patients := make([]models.Patient, 0, len(raws))
	for _, raw := range raws {
		var wire patientResource
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse patient resource", err)
		}
		patients = append(patients, wire.toModel(raw))
	}
	return patients, nil
}

func (c *Client) FindAppointments(ctx context.Context, q models.AppointmentQuery) ([]models.Appointment, error) {
	params := url.Values{}
	params.Set("patient.identifier", q.MRN)
	if q.Start != "" {
		params.Add("date", "ge"+q.Start)
	}
	if q.End != "" {
		params.Add("date", "le"+q.End)
	}

	body, err := c.get(ctx, "Appointment", params)
	if err != nil {
		return nil, err
	}

	raws, err := c.entries(body)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(raws))
	for _, raw := range raws {
		var wire appointmentResource
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse appointment resource", err)
		}
		appointments = append(appointments, wire.toModel(raw))
	}
	return appointments, nil
}

func (c *Client) FindConditions(ctx context.Context, q models.ConditionQuery) ([]models.Condition, error) {
	params := url.Values{}
	params.Set("patient", q.PatientID)
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	body, err := c.get(ctx, "Condition", params)
	if err != nil {
		return nil, err
	}

	raws, err := c.entries(body)
	if err != nil {
		return nil, err
	}

	conditions := make([]models.Condition, 0, len(raws))
	for _, raw := range raws {
		var wire conditionResource
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse condition resource", err)
		}
		conditions = append(conditions, wire.toModel(raw))
	}
	return conditions, nil
}

func (c *Client) FindPractitioner(ctx context.Context, q models.PractitionerQuery) (*models.Practitioner, error) {
	var (
		body []byte
		err  error
	)
	if q.ID != "" {
		body, err = ehr.DoJSON(ctx, c.client, vendorName, http.MethodGet,
			fmt.Sprintf("%s/Practitioner/%s", c.baseURL, url.PathEscape(q.ID)), nil)
		if err != nil {
			return nil, err
		}
		var wire practitionerResource
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse practitioner resource", err)
		}
		return ptr(wire.toModel(body)), nil
	}

	params := url.Values{}
	params.Set("identifier", q.ProviderID)
	body, err = c.get(ctx, "Practitioner", params)
	if err != nil {
		return nil, err
	}

	raws, err := c.entries(body)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, ehr.NewError(ehr.ErrorNotFound, vendorName,
			fmt.Sprintf("no practitioner for provider %s", q.ProviderID), nil)
	}

	var wire practitionerResource
	if err := json.Unmarshal(raws[0], &wire); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse practitioner resource", err)
	}
	return ptr(wire.toModel(raws[0])), nil
}

func (c *Client) SendMessage(ctx context.Context, msg models.OutboundMessage) (*models.MessageOutcome, error) {
	payload, err := json.Marshal(map[string]string{
		"patientId":   msg.PatientID,
		"recipientId": msg.RecipientID,
		"senderId":    msg.SenderID,
		"messageType": msg.MessageType,
		"subject":     msg.Subject,
		"body":        msg.Body,
	})
	if err != nil {
		return nil, ehr.NewError(ehr.ErrorInternal, vendorName, "failed to marshal message", err)
	}

	body, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodPost, c.baseURL+"/Communication", payload)
	if err != nil {
		return nil, err
	}

	var outcome models.MessageOutcome
	if err := json.Unmarshal(body, &outcome); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse message outcome", err)
	}
	return &outcome, nil
}

func (c *Client) SendNote(ctx context.Context, note models.OutboundNote) (*models.NoteOutcome, error) {
	payload, err := json.Marshal(map[string]string{
		"patientId":   note.PatientID,
		"encounterId": note.EncounterID,
		"authorId":    note.AuthorID,
		"noteType":    note.NoteType,
		"text":        note.Text,
	})
	if err != nil {
		return nil, ehr.NewError(ehr.ErrorInternal, vendorName, "failed to marshal note", err)
	}

	body, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodPost, c.baseURL+"/DocumentReference", payload)
	if err != nil {
		return nil, err
	}

	var outcome models.NoteOutcome
	if err := json.Unmarshal(body, &outcome); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse note outcome", err)
	}
	return &outcome, nil
}

func (c *Client) Health(ctx context.Context) error {
	_, err := ehr.DoJSON(ctx, c.client, vendorName, http.MethodGet, c.baseURL+"/metadata", nil)
	return err
}

func (c *Client) get(ctx context.Context, resource string, params url.Values) ([]byte, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())
	return ehr.DoJSON(ctx, c.client, vendorName, http.MethodGet, u, nil)
}

func (c *Client) entries(body []byte) ([]json.RawMessage, error) {
	var b bundle
	if err := json.Unmarshal(body, &b); err != nil {
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName, "failed to parse search bundle", err)
	}
	raws := make([]json.RawMessage, 0, len(b.Entry))
	for _, entry := range b.Entry {
		raws = append(raws, entry.Resource)
	}
	return raws, nil
}

func ptr[T any](v T) *T { return &v }
