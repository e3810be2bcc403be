package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "medgate/pkg/domain-errors"
)

func TestLocalize(t *testing.T) {
	assert.Equal(t, "epic-PatientFHIRID1", Localize("PatientFHIRID1", "epic"))
}

func TestLocalizeRoundTrip(t *testing.T) {
	cases := []struct {
		mnemonic string
		vendorID string
	}{
		{"epic", "PatientFHIRID1"},
		{"cernerwest", "12345"},
		{"a", "x"},
		{"epic", "id-with-dashes-inside"},
	}

	for _, tc := range cases {
		localized := Localize(tc.vendorID, tc.mnemonic)
		back, err := Delocalize(localized, tc.mnemonic)
		require.NoError(t, err)
		assert.Equal(t, tc.vendorID, back)
	}
}

func TestLocalizeDistinctAcrossTenants(t *testing.T) {
	assert.NotEqual(t, Localize("V1", "epic"), Localize("V1", "cerner"))
}

func TestDelocalizeWrongTenant(t *testing.T) {
	_, err := Delocalize("epic-PatientFHIRID1", "cerner")
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeMalformed))
}

func TestDelocalizeEmptyRemainder(t *testing.T) {
	_, err := Delocalize("epic-", "epic")
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeMalformed))
}
