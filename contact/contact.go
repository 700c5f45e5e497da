package contact

import (
	"context"
	"fmt"
	"strings"
)

// PermissionStatus describes contacts permission state for the current
// process against one backend store.
type PermissionStatus string

const (
	// PermissionNotDetermined indicates access has not been requested yet.
	PermissionNotDetermined PermissionStatus = "not_determined"
	// PermissionDenied indicates the user or platform denied access.
	PermissionDenied PermissionStatus = "denied"
	// PermissionGranted indicates contacts access is granted.
	PermissionGranted PermissionStatus = "granted"
	// PermissionLimited indicates access to a user-selected subset only.
	PermissionLimited PermissionStatus = "limited"
)

// ErrorCode classifies backend errors from contact stores.
type ErrorCode string

const (
	// ErrorCodePermissionDenied indicates authorization is missing.
	ErrorCodePermissionDenied ErrorCode = "permission_denied"
	// ErrorCodeStoreUnavailable indicates the backing store cannot be opened.
	ErrorCodeStoreUnavailable ErrorCode = "store_unavailable"
	// ErrorCodeEnumerationFailed indicates the store failed mid-enumeration.
	ErrorCodeEnumerationFailed ErrorCode = "enumeration_failed"
	// ErrorCodeUnknown indicates an unmapped error.
	ErrorCodeUnknown ErrorCode = "unknown"
)

// Error is a typed package error for backend operations.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "contact: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("contact: %s", e.Code)
	}
	return fmt.Sprintf("contact: %s: %s", e.Code, e.Message)
}

// LabeledValue is one multi-valued attribute instance (a phone number, email
// address, or URL) belonging to a contact.
//
// ID identifies the owning contact, not the value itself; callers must not
// assume per-value uniqueness. Value is the raw attribute payload as stored,
// never normalized or validated.
type LabeledValue struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// PostalAddress is one structured postal address belonging to a contact.
// Absent fields are empty strings. ISOCountryCode is best-effort and may be
// empty when the source store cannot supply it.
type PostalAddress struct {
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	ISOCountryCode string `json:"isoCountryCode"`
	Label          string `json:"label"`
}

// Contact is one fully-aggregated address book entry.
//
// ID is unique within one aggregation pass and stable across re-fetches of
// the same snapshot; it is not guaranteed stable across platform upgrades.
// Birthday (ISO full date) and ThumbnailPath are empty when unknown; all
// other scalar fields default to empty strings. HasImage is true exactly
// when ThumbnailPath is set; the path is a reference (URI or file path),
// never image bytes.
type Contact struct {
	ID              string          `json:"id"`
	DisplayName     string          `json:"displayName"`
	GivenName       string          `json:"givenName"`
	MiddleName      string          `json:"middleName"`
	FamilyName      string          `json:"familyName"`
	Company         string          `json:"company"`
	JobTitle        string          `json:"jobTitle"`
	Department      string          `json:"department"`
	Note            string          `json:"note"`
	Birthday        string          `json:"birthday,omitempty"`
	Emails          []LabeledValue  `json:"emails"`
	PhoneNumbers    []LabeledValue  `json:"phoneNumbers"`
	PostalAddresses []PostalAddress `json:"postalAddresses"`
	URLAddresses    []LabeledValue  `json:"urlAddresses"`
	ThumbnailPath   string          `json:"thumbnailPath,omitempty"`
	HasImage        bool            `json:"hasImage"`
}

// Store is the read-only access surface every backend implements.
//
// GetAll fails with an ErrorCodePermissionDenied error before touching the
// store when the permission status is anything other than
// PermissionGranted; it never requests permission on the caller's behalf.
// Concurrent GetAll calls are independent: each opens its own store session
// and shares no aggregation state.
type Store interface {
	PermissionStatus() (PermissionStatus, error)
	RequestPermission(ctx context.Context) (bool, error)
	GetAll(ctx context.Context) ([]Contact, error)
}

// ComposeDisplayName joins the non-empty name parts with single spaces, for
// stores that do not carry a precomputed display name.
func ComposeDisplayName(given, middle, family string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{given, middle, family} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, " ")
}
