package epic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medgate/internal/ehr"
	"medgate/internal/ehr/models"
)

func TestFindPatients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Patient", r.URL.Path)
		assert.Equal(t, "MRN123", r.URL.Query().Get("identifier"))
		w.Write([]byte(`{"entry":[
			{"resource":{"id":"PatientFHIRID1","identifier":[{"system":"urn:oid:mrn","value":"MRN123"}],"name":[{"family":"Chen","given":["Ada"]}],"birthDate":"1984-03-02","gender":"female"}},
			{"resource":{"id":"PatientFHIRID2","name":[{"family":"Chen","given":["Ben"]}]}}
		]}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	patients, err := client.FindPatients(context.Background(), models.PatientQuery{MRN: "MRN123"})
	require.NoError(t, err)
	require.Len(t, patients, 2)

	assert.Equal(t, "PatientFHIRID1", patients[0].ID)
	require.Len(t, patients[0].Identifiers, 1)
	assert.Equal(t, "MRN123", patients[0].Identifiers[0].Value)
	require.NotNil(t, patients[0].BirthDate)
	assert.Equal(t, "1984-03-02", *patients[0].BirthDate)
	assert.Contains(t, string(patients[0].Raw), `"id":"PatientFHIRID1"`)

	assert.Equal(t, "PatientFHIRID2", patients[1].ID)
	assert.Nil(t, patients[1].BirthDate)
}

func TestFindConditionsVariantShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Condition", r.URL.Path)
		w.Write([]byte(`{"entry":[
			{"resource":{"id":"c1","subject":{"reference":"Patient/p1"},"onsetPeriod":{"start":"2022-01-01"}}},
			{"resource":{"id":"c2","subject":{"reference":"Patient/p1"},"onsetAge":{"value":40,"unit":"a"},"abatementDateTime":"2023-06-01"}},
			{"resource":{"id":"c3","subject":{"reference":"Patient/p1"},"onsetString":"childhood","note":[{"authorReference":{"reference":"Practitioner/pr9","display":"Dr. Roe"},"text":"stable"},{"authorString":"triage nurse","text":"follow up"}]}}
		]}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	conditions, err := client.FindConditions(context.Background(), models.ConditionQuery{PatientID: "p1"})
	require.NoError(t, err)
	require.Len(t, conditions, 3)

	period, ok := conditions[0].Onset.(models.OnsetPeriod)
	require.True(t, ok)
	require.NotNil(t, period.Value.Start)
	assert.Equal(t, "2022-01-01", *period.Value.Start)
	assert.Nil(t, period.Value.End)
	assert.Nil(t, conditions[0].Abatement)

	age, ok := conditions[1].Onset.(models.OnsetAge)
	require.True(t, ok)
	require.NotNil(t, age.Value.Value)
	assert.Equal(t, float64(40), *age.Value.Value)
	_, ok = conditions[1].Abatement.(models.AbatementDateTime)
	assert.True(t, ok)

	require.Len(t, conditions[2].Notes, 2)
	authorRef, ok := conditions[2].Notes[0].Author.(models.AuthorReference)
	require.True(t, ok)
	require.NotNil(t, authorRef.Value.ID)
	assert.Equal(t, "pr9", *authorRef.Value.ID)
	authorStr, ok := conditions[2].Notes[1].Author.(models.AuthorString)
	require.True(t, ok)
	assert.Equal(t, "triage nurse", authorStr.Value)

	subject := conditions[0].Subject
	require.NotNil(t, subject.ID)
	assert.Equal(t, "p1", *subject.ID)
	require.NotNil(t, subject.Type)
	assert.Equal(t, "Patient", *subject.Type)
}

func TestFindPractitionerByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Practitioner/pr1", r.URL.Path)
		w.Write([]byte(`{"id":"pr1","name":[{"family":"Roe","given":["Dana"]}],"active":true}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	practitioner, err := client.FindPractitioner(context.Background(), models.PractitionerQuery{ID: "pr1"})
	require.NoError(t, err)
	assert.Equal(t, "pr1", practitioner.ID)
	require.NotNil(t, practitioner.Active)
	assert.True(t, *practitioner.Active)
}

func TestStatusCodesMapToCategories(t *testing.T) {
	cases := []struct {
		status   int
		category ehr.ErrorCategory
	}{
		{http.StatusUnauthorized, ehr.ErrorAuthentication},
		{http.StatusNotFound, ehr.ErrorNotFound},
		{http.StatusTooManyRequests, ehr.ErrorRateLimited},
		{http.StatusUnprocessableEntity, ehr.ErrorRejected},
		{http.StatusBadGateway, ehr.ErrorVendorOutage},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		client := New(Config{BaseURL: server.URL})
		_, err := client.FindPatients(context.Background(), models.PatientQuery{MRN: "x"})
		require.Error(t, err)

		var ve *ehr.Error
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, tc.category, ve.Category, "status %d", tc.status)
		assert.Equal(t, "epic", ve.Vendor)

		server.Close()
	}
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Communication", r.URL.Path)
		w.Write([]byte(`{"id":"comm-1","status":"completed"}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	outcome, err := client.SendMessage(context.Background(), models.OutboundMessage{
		PatientID:   "p1",
		RecipientID: "pr1",
		Subject:     "results ready",
	})
	require.NoError(t, err)
	assert.Equal(t, "comm-1", outcome.ID)
	assert.Equal(t, "completed", outcome.Status)
}
