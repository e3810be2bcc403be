// Package translate converts vendor-native resources into the public
// gateway shapes. Everything here is deterministic and side-effect free;
// translators are safe to run concurrently on disjoint inputs.
package translate

import (
	"fmt"
	"strings"

	domainerrors "medgate/pkg/domain-errors"
)

// Separator joins the tenant mnemonic and the vendor-local identifier.
// Mnemonics are validated to never contain it, so localization is injective
// per tenant and delocalization is unambiguous.
const Separator = "-"

// Localize builds the externally visible identifier for a vendor-local ID.
// The ID must be non-empty; vendors never issue empty identifiers, and
// Delocalize rejects a bare tenant prefix as malformed.
func Localize(vendorLocalID, mnemonic string) string {
	return mnemonic + Separator + vendorLocalID
}

// Delocalize strips the tenant prefix from a localized identifier, restoring
// the vendor-local ID. Fails when the identifier does not carry the tenant's
// prefix.
func Delocalize(localizedID, mnemonic string) (string, error) {
	prefix := mnemonic + Separator
	if !strings.HasPrefix(localizedID, prefix) || len(localizedID) == len(prefix) {
		return "", domainerrors.New(domainerrors.CodeMalformed,
			fmt.Sprintf("identifier %q does not belong to Tenant %q", localizedID, mnemonic))
	}
	return strings.TrimPrefix(localizedID, prefix), nil
}
