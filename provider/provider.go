package provider

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spachava753/rolodex/contact"
)

// Mime type discriminants of the provider data table. Each data row carries
// exactly one of these and populates the generic columns accordingly.
const (
	mimeName         = "vnd.android.cursor.item/name"
	mimeOrganization = "vnd.android.cursor.item/organization"
	mimePhone        = "vnd.android.cursor.item/phone_v2"
	mimeEmail        = "vnd.android.cursor.item/email_v2"
	mimePostal       = "vnd.android.cursor.item/postal-address_v2"
	mimeWebsite      = "vnd.android.cursor.item/website"
	mimeNote         = "vnd.android.cursor.item/note"
	mimeEvent        = "vnd.android.cursor.item/contact_event"
	mimePhoto        = "vnd.android.cursor.item/photo"
)

// Native provider type codes per attribute class.
const (
	phoneTypeCustom = 0
	phoneTypeHome   = 1
	phoneTypeMobile = 2
	phoneTypeWork   = 3
	phoneTypeMain   = 12

	emailTypeCustom = 0
	emailTypeHome   = 1
	emailTypeWork   = 2

	postalTypeCustom = 0
	postalTypeHome   = 1
	postalTypeWork   = 2

	websiteTypeCustom = 0
	websiteTypeHome   = 4
	websiteTypeWork   = 5

	eventTypeAnniversary = 1
	eventTypeBirthday    = 3
)

const photoURIFormat = "content://com.android.contacts/contacts/%s/photo"

// One wide projection over the whole data table, one cursor pass. Rows are
// pre-sorted by display name so first-occurrence aggregation order matches
// the address book's natural order.
const dataQuery = `
SELECT
	r.contact_id,
	m.mimetype,
	r.display_name,
	d.data1,
	d.data2,
	d.data3,
	d.data4,
	d.data5,
	d.data7,
	d.data8,
	d.data9,
	d.data10
FROM data d
JOIN mimetypes m ON m._id = d.mimetype_id
JOIN raw_contacts r ON r._id = d.raw_contact_id
WHERE COALESCE(r.deleted, 0) = 0
ORDER BY r.display_name ASC, r.contact_id ASC, d._id ASC;
`

const dataColumns = 12

// Positions within a scanned dataQuery record.
const (
	colContactID = iota
	colMimeType
	colDisplayName
	colData1
	colData2
	colData3
	colData4
	colData5
	colData7
	colData8
	colData9
	colData10
)

// Store reads one contacts-provider snapshot database (contacts2.db layout:
// raw_contacts, mimetypes, and the generic data table).
type Store struct {
	path string
}

// New returns a Store over the snapshot database at path. No IO happens
// until a method is called.
func New(path string) *Store {
	return &Store{path: strings.TrimSpace(path)}
}

// PermissionStatus reports access to the snapshot file: granted when
// readable, denied when the filesystem refuses access, not determined when
// the snapshot has not been provisioned yet.
func (s *Store) PermissionStatus() (contact.PermissionStatus, error) {
	if s.path == "" {
		return "", &contact.Error{Code: contact.ErrorCodeStoreUnavailable, Message: "snapshot path is not set"}
	}
	f, err := os.Open(s.path)
	if err == nil {
		f.Close()
		return contact.PermissionGranted, nil
	}
	if os.IsPermission(err) {
		return contact.PermissionDenied, nil
	}
	if os.IsNotExist(err) {
		return contact.PermissionNotDetermined, nil
	}
	return "", &contact.Error{Code: contact.ErrorCodeStoreUnavailable, Message: err.Error()}
}

// RequestPermission cannot present a grant dialog: access to the snapshot
// file is decided outside this process. It reports whether access is
// currently granted so callers can branch the same way on every backend.
func (s *Store) RequestPermission(_ context.Context) (bool, error) {
	status, err := s.PermissionStatus()
	if err != nil {
		return false, err
	}
	return status == contact.PermissionGranted, nil
}

// GetAll reads the snapshot in one cursor pass and returns the aggregated
// contacts in display-name order. It fails before opening the database when
// permission is not granted and never requests permission itself.
func (s *Store) GetAll(ctx context.Context) ([]contact.Contact, error) {
	status, err := s.PermissionStatus()
	if err != nil {
		return nil, err
	}
	if status != contact.PermissionGranted {
		return nil, &contact.Error{
			Code:    contact.ErrorCodePermissionDenied,
			Message: fmt.Sprintf("contacts permission is %s", status),
		}
	}

	db, err := s.openSnapshot()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, dataQuery)
	if err != nil {
		return nil, &contact.Error{Code: contact.ErrorCodeEnumerationFailed, Message: err.Error()}
	}
	src := &rowSource{rows: rows}
	defer src.Close()

	return contact.Aggregate(ctx, src)
}

func (s *Store) openSnapshot() (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", strings.ReplaceAll(s.path, " ", "%20"))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &contact.Error{Code: contact.ErrorCodeStoreUnavailable, Message: err.Error()}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &contact.Error{Code: contact.ErrorCodeStoreUnavailable, Message: err.Error()}
	}
	return db, nil
}

// rowSource adapts the open cursor to the aggregator's row contract. Rows
// with an unknown mime type are skipped here so the aggregator only ever
// sees declared kinds.
type rowSource struct {
	rows *sql.Rows
}

func (s *rowSource) Next() (contact.AttributeRow, error) {
	for s.rows.Next() {
		record, err := scanRecord(s.rows)
		if err != nil {
			return contact.AttributeRow{}, &contact.Error{Code: contact.ErrorCodeEnumerationFailed, Message: err.Error()}
		}
		row, ok := mapRecord(record)
		if !ok {
			continue
		}
		return row, nil
	}
	if err := s.rows.Err(); err != nil {
		return contact.AttributeRow{}, &contact.Error{Code: contact.ErrorCodeEnumerationFailed, Message: err.Error()}
	}
	return contact.AttributeRow{}, io.EOF
}

func (s *rowSource) Close() error {
	return s.rows.Close()
}

// scanRecord stringifies one cursor row. The data columns are dynamically
// typed (given name and numeric type code share a column across mime
// types), so everything scans through any and NULL becomes "".
func scanRecord(rows *sql.Rows) ([]string, error) {
	values := make([]any, dataColumns)
	pointers := make([]any, dataColumns)
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}

	record := make([]string, dataColumns)
	for i, value := range values {
		switch typed := value.(type) {
		case nil:
			record[i] = ""
		case []byte:
			record[i] = string(typed)
		default:
			record[i] = fmt.Sprint(typed)
		}
	}
	return record, nil
}

func mapRecord(record []string) (contact.AttributeRow, bool) {
	row := contact.AttributeRow{
		ContactID:   record[colContactID],
		DisplayName: record[colDisplayName],
	}

	switch record[colMimeType] {
	case mimeName:
		row.Kind = contact.RowName
		row.GivenName = record[colData2]
		row.MiddleName = record[colData5]
		row.FamilyName = record[colData3]
	case mimeOrganization:
		row.Kind = contact.RowOrganization
		row.Company = record[colData1]
		row.JobTitle = record[colData4]
		row.Department = record[colData5]
	case mimePhone:
		row.Kind = contact.RowPhone
		row.Value = record[colData1]
		row.Label = phoneLabelCode(record[colData2])
		row.CustomLabel = record[colData3]
	case mimeEmail:
		row.Kind = contact.RowEmail
		row.Value = record[colData1]
		row.Label = emailLabelCode(record[colData2])
		row.CustomLabel = record[colData3]
	case mimePostal:
		row.Kind = contact.RowPostal
		row.Street = record[colData4]
		row.City = record[colData7]
		row.State = record[colData8]
		row.PostalCode = record[colData9]
		row.Country = record[colData10]
		row.Label = postalLabelCode(record[colData2])
		row.CustomLabel = record[colData3]
	case mimeWebsite:
		row.Kind = contact.RowWebsite
		row.Value = record[colData1]
		row.Label = websiteLabelCode(record[colData2])
		row.CustomLabel = record[colData3]
	case mimeNote:
		row.Kind = contact.RowNote
		row.Note = record[colData1]
	case mimeEvent:
		row.Kind = contact.RowEvent
		row.EventDate = record[colData1]
		row.Event = eventType(record[colData2])
	case mimePhoto:
		row.Kind = contact.RowPhoto
		row.ThumbnailPath = fmt.Sprintf(photoURIFormat, record[colContactID])
	default:
		return contact.AttributeRow{}, false
	}
	return row, true
}

func phoneLabelCode(raw string) contact.LabelCode {
	switch parseTypeCode(raw) {
	case phoneTypeCustom:
		return contact.LabelCustom
	case phoneTypeHome:
		return contact.LabelHome
	case phoneTypeMobile:
		return contact.LabelMobile
	case phoneTypeWork:
		return contact.LabelWork
	case phoneTypeMain:
		return contact.LabelMain
	default:
		return contact.LabelOther
	}
}

func emailLabelCode(raw string) contact.LabelCode {
	switch parseTypeCode(raw) {
	case emailTypeCustom:
		return contact.LabelCustom
	case emailTypeHome:
		return contact.LabelHome
	case emailTypeWork:
		return contact.LabelWork
	default:
		return contact.LabelOther
	}
}

func postalLabelCode(raw string) contact.LabelCode {
	switch parseTypeCode(raw) {
	case postalTypeCustom:
		return contact.LabelCustom
	case postalTypeHome:
		return contact.LabelHome
	case postalTypeWork:
		return contact.LabelWork
	default:
		return contact.LabelOther
	}
}

func websiteLabelCode(raw string) contact.LabelCode {
	switch parseTypeCode(raw) {
	case websiteTypeCustom:
		return contact.LabelCustom
	case websiteTypeHome:
		return contact.LabelHome
	case websiteTypeWork:
		return contact.LabelWork
	default:
		return contact.LabelOther
	}
}

func eventType(raw string) contact.EventType {
	switch parseTypeCode(raw) {
	case eventTypeBirthday:
		return contact.EventBirthday
	case eventTypeAnniversary:
		return contact.EventAnniversary
	default:
		return contact.EventOther
	}
}

// parseTypeCode reads a numeric type code column; an unreadable code maps
// to an out-of-range value so the resolver lands on "other".
func parseTypeCode(raw string) int {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1
	}
	return code
}
