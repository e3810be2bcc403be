package models

import (
	"time"

	dErrors "medgate/pkg/domain-errors"
)

// VendorType identifies which EHR protocol family a tenant is configured against.
type VendorType string

const (
	VendorEpic   VendorType = "epic"
	VendorCerner VendorType = "cerner"
)

// Valid reports whether the vendor type is one of the supported families.
func (v VendorType) Valid() bool {
	return v == VendorEpic || v == VendorCerner
}

// Connection carries the per-tenant vendor connection configuration.
// Credentials are references into the secret store, never raw secrets.
type Connection struct {
	BaseURL         string   `json:"base_url"`
	ClientID        string   `json:"client_id"`
	ClientSecretRef string   `json:"client_secret_ref"`
	Servers         []string `json:"servers,omitempty"`
}

// BatchWindow is an optional daily window during which batch operations
// against the vendor backend are permitted.
type BatchWindow struct {
	Start    string `json:"start"` // "15:04" clock time
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

// InWindow reports whether t falls inside the window. Windows that wrap
// midnight (start > end) are supported.
func (w *BatchWindow) InWindow(t time.Time) bool {
	if w == nil {
		return true
	}
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := t.In(loc)

	start, err := time.Parse("15:04", w.Start)
	if err != nil {
		return true
	}
	end, err := time.Parse("15:04", w.End)
	if err != nil {
		return true
	}

	minutes := local.Hour()*60 + local.Minute()
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()

	if startMin <= endMin {
		return minutes >= startMin && minutes < endMin
	}
	return minutes >= startMin || minutes < endMin
}

// Tenant identifies one client installation.
//
// The numeric ID is DB-assigned and used only for storage joins; it is never
// surfaced externally. The mnemonic is the external identity: it appears in
// requests and in localized resource identifiers, so it is immutable once
// issued to a caller.
type Tenant struct {
	ID          int64        `json:"-"`
	Mnemonic    string       `json:"mnemonic"`
	Vendor      VendorType   `json:"vendor"`
	Connection  Connection   `json:"connection"`
	BatchWindow *BatchWindow `json:"batch_window,omitempty"`
	Monitored   bool         `json:"monitored"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTenant validates and constructs a tenant configuration record.
func NewTenant(mnemonic string, vendor VendorType, conn Connection, now time.Time) (*Tenant, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	if !vendor.Valid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unsupported vendor type: "+string(vendor))
	}
	return &Tenant{
		Mnemonic:   mnemonic,
		Vendor:     vendor,
		Connection: conn,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ValidateMnemonic enforces the mnemonic alphabet. Localized identifiers are
// formed as "<mnemonic>-<vendor id>", so the mnemonic must not contain the
// separator or delocalization becomes ambiguous.
func ValidateMnemonic(mnemonic string) error {
	if mnemonic == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "tenant mnemonic cannot be empty")
	}
	if len(mnemonic) > 64 {
		return dErrors.New(dErrors.CodeInvalidInput, "tenant mnemonic must be 64 characters or less")
	}
	for _, r := range mnemonic {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return dErrors.New(dErrors.CodeInvalidInput, "tenant mnemonic must be lowercase alphanumeric")
		}
	}
	return nil
}
