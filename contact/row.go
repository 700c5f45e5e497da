package contact

// RowKind discriminates attribute rows by the data they carry.
type RowKind string

const (
	// RowName carries structured name fields.
	RowName RowKind = "name"
	// RowOrganization carries company, job title, and department fields.
	RowOrganization RowKind = "organization"
	// RowPhone carries one phone number.
	RowPhone RowKind = "phone"
	// RowEmail carries one email address.
	RowEmail RowKind = "email"
	// RowPostal carries one structured postal address.
	RowPostal RowKind = "postal"
	// RowWebsite carries one URL.
	RowWebsite RowKind = "website"
	// RowNote carries the contact note.
	RowNote RowKind = "note"
	// RowEvent carries one dated event (birthday, anniversary, ...).
	RowEvent RowKind = "event"
	// RowPhoto carries a reference to the contact image.
	RowPhoto RowKind = "photo"
)

// EventType classifies dated event rows. Only birthdays populate the
// aggregated contact; other event types are ignored.
type EventType string

const (
	// EventBirthday marks a birthday event row.
	EventBirthday EventType = "birthday"
	// EventAnniversary marks an anniversary event row.
	EventAnniversary EventType = "anniversary"
	// EventOther marks any other dated event row.
	EventOther EventType = "other"
)

// AttributeRow is one unit of contact data tagged with its owning contact id
// and a kind discriminant. Only the field group matching Kind is meaningful;
// the rest stay zero, mirroring a wide-projection cursor row where each row
// populates the columns of one mime type.
//
// DisplayName may ride along on any row; it seeds the contact's display name
// when the row is the first one seen for its contact id.
type AttributeRow struct {
	ContactID   string
	Kind        RowKind
	DisplayName string

	// RowName
	GivenName  string
	MiddleName string
	FamilyName string

	// RowOrganization
	Company    string
	JobTitle   string
	Department string

	// RowPhone, RowEmail, RowWebsite primary value and label pair.
	Value       string
	Label       LabelCode
	CustomLabel string

	// RowPostal (Label and CustomLabel apply here too).
	Street         string
	City           string
	State          string
	PostalCode     string
	Country        string
	ISOCountryCode string

	// RowNote
	Note string

	// RowEvent
	EventDate string
	Event     EventType

	// RowPhoto
	ThumbnailPath string
}

// RowSource is one open enumeration session over a contact store. Next
// returns io.EOF after the last row; any other error means the store failed
// mid-stream and is propagated unchanged by the aggregator. Close releases
// the session and must be safe to call after a failed Next.
type RowSource interface {
	Next() (AttributeRow, error)
	Close() error
}
