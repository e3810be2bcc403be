package cerner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medgate/internal/ehr/models"
)

func TestProblemVariantKinds(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		check   func(t *testing.T, cond models.Condition)
	}{
		{
			name:    "period onset",
			payload: `{"problem_id":"pb1","patient_id":"p1","onset":{"kind":"period","start":"2022-01-01"}}`,
			check: func(t *testing.T, cond models.Condition) {
				period, ok := cond.Onset.(models.OnsetPeriod)
				require.True(t, ok)
				require.NotNil(t, period.Value.Start)
				assert.Equal(t, "2022-01-01", *period.Value.Start)
				assert.Nil(t, period.Value.End)
			},
		},
		{
			name:    "age onset with text abatement",
			payload: `{"problem_id":"pb2","patient_id":"p1","onset":{"kind":"age","value":12,"unit":"a"},"abatement":{"kind":"text","text":"resolved in adolescence"}}`,
			check: func(t *testing.T, cond models.Condition) {
				age, ok := cond.Onset.(models.OnsetAge)
				require.True(t, ok)
				assert.Equal(t, float64(12), *age.Value.Value)
				abatement, ok := cond.Abatement.(models.AbatementString)
				require.True(t, ok)
				assert.Equal(t, "resolved in adolescence", abatement.Value)
			},
		},
		{
			name:    "range onset",
			payload: `{"problem_id":"pb3","patient_id":"p1","onset":{"kind":"range","low":30,"high":40,"unit":"a"}}`,
			check: func(t *testing.T, cond models.Condition) {
				rng, ok := cond.Onset.(models.OnsetRange)
				require.True(t, ok)
				require.NotNil(t, rng.Value.Low)
				assert.Equal(t, float64(30), *rng.Value.Low.Value)
				require.NotNil(t, rng.Value.High)
				assert.Equal(t, float64(40), *rng.Value.High.Value)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var wire problemRecord
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &wire))
			cond, err := wire.toModel(json.RawMessage(tc.payload))
			require.NoError(t, err)
			tc.check(t, cond)
		})
	}
}

func TestProblemUnrecognizedVariantKind(t *testing.T) {
	var wire problemRecord
	payload := `{"problem_id":"pb4","patient_id":"p1","onset":{"kind":"lunar_phase"}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &wire))

	_, err := wire.toModel(json.RawMessage(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lunar_phase")
}

func TestFindPatientsMapsFlatRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/patients", r.URL.Path)
		assert.Equal(t, "MRN9", r.URL.Query().Get("mrn"))
		w.Write([]byte(`{"results":[{"patient_id":"cp1","identifiers":[{"type":"MRN","value":"MRN9"}],"first_name":"Ada","last_name":"Chen","dob":"1984-03-02"}]}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	patients, err := client.FindPatients(context.Background(), models.PatientQuery{MRN: "MRN9"})
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "cp1", patients[0].ID)
	require.Len(t, patients[0].Names, 1)
	assert.Equal(t, "Chen", patients[0].Names[0].Family)
	assert.Equal(t, []string{"Ada"}, patients[0].Names[0].Given)
	assert.Contains(t, string(patients[0].Raw), `"patient_id":"cp1"`)
}
