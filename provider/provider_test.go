package provider

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/rolodex/contact"
)

const snapshotSchema = `
CREATE TABLE raw_contacts (
	_id INTEGER PRIMARY KEY,
	contact_id INTEGER NOT NULL,
	display_name TEXT,
	deleted INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE mimetypes (
	_id INTEGER PRIMARY KEY,
	mimetype TEXT NOT NULL
);
CREATE TABLE data (
	_id INTEGER PRIMARY KEY,
	raw_contact_id INTEGER NOT NULL,
	mimetype_id INTEGER NOT NULL,
	data1 TEXT, data2 TEXT, data3 TEXT, data4 TEXT, data5 TEXT,
	data6 TEXT, data7 TEXT, data8 TEXT, data9 TEXT, data10 TEXT,
	data14 TEXT, data15 BLOB
);
`

var mimetypeIDs = map[string]int{
	mimeName:         1,
	mimeOrganization: 2,
	mimePhone:        3,
	mimeEmail:        4,
	mimePostal:       5,
	mimeWebsite:      6,
	mimeNote:         7,
	mimeEvent:        8,
	mimePhoto:        9,
}

type fixture struct {
	t    *testing.T
	db   *sql.DB
	path string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts2.db")
	db, err := sql.Open("sqlite3", path)
	be.Err(t, err, nil)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(snapshotSchema)
	be.Err(t, err, nil)
	for mimetype, id := range mimetypeIDs {
		_, err = db.Exec(`INSERT INTO mimetypes (_id, mimetype) VALUES (?, ?)`, id, mimetype)
		be.Err(t, err, nil)
	}
	return &fixture{t: t, db: db, path: path}
}

func (f *fixture) addRawContact(rawID, contactID int, displayName string, deleted int) {
	f.t.Helper()
	_, err := f.db.Exec(
		`INSERT INTO raw_contacts (_id, contact_id, display_name, deleted) VALUES (?, ?, ?, ?)`,
		rawID, contactID, displayName, deleted,
	)
	be.Err(f.t, err, nil)
}

func (f *fixture) addData(rawID int, mimetype string, cols map[string]any) {
	f.t.Helper()
	names := []string{"raw_contact_id", "mimetype_id"}
	args := []any{rawID, mimetypeIDs[mimetype]}
	placeholders := []string{"?", "?"}
	for name, value := range cols {
		names = append(names, name)
		args = append(args, value)
		placeholders = append(placeholders, "?")
	}
	query := "INSERT INTO data (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	_, err := f.db.Exec(query, args...)
	be.Err(f.t, err, nil)
}

func TestGetAllAggregatesSnapshot(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 1, "Ann Lee", 0)
	f.addRawContact(20, 2, "Ben Ray", 0)

	f.addData(10, mimeName, map[string]any{"data2": "Ann", "data3": "Lee"})
	f.addData(10, mimePhone, map[string]any{"data1": "555-1111", "data2": phoneTypeMobile})
	f.addData(10, mimeEmail, map[string]any{"data1": "ann@school.edu", "data2": emailTypeCustom, "data3": "School"})
	f.addData(10, mimePostal, map[string]any{
		"data2": postalTypeHome, "data4": "1 Main St", "data7": "Springfield",
		"data8": "IL", "data9": "62701", "data10": "USA",
	})
	f.addData(10, mimeNote, map[string]any{"data1": "college friend"})

	f.addData(20, mimeName, map[string]any{"data2": "Ben", "data3": "Ray"})
	f.addData(20, mimeOrganization, map[string]any{"data1": "Acme", "data4": "CTO", "data5": "R&D"})
	f.addData(20, mimeWebsite, map[string]any{"data1": "https://ben.example", "data2": websiteTypeWork})
	f.addData(20, mimePhoto, map[string]any{})

	contacts, err := New(f.path).GetAll(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, len(contacts), 2)

	ann := contacts[0]
	be.Equal(t, ann.ID, "1")
	be.Equal(t, ann.DisplayName, "Ann Lee")
	be.Equal(t, ann.GivenName, "Ann")
	be.Equal(t, ann.FamilyName, "Lee")
	be.Equal(t, ann.PhoneNumbers, []contact.LabeledValue{{ID: "1", Label: "mobile", Value: "555-1111"}})
	be.Equal(t, ann.Emails, []contact.LabeledValue{{ID: "1", Label: "School", Value: "ann@school.edu"}})
	be.Equal(t, ann.PostalAddresses, []contact.PostalAddress{{
		Street: "1 Main St", City: "Springfield", State: "IL",
		PostalCode: "62701", Country: "USA", Label: "home",
	}})
	be.Equal(t, ann.Note, "college friend")
	be.Equal(t, ann.HasImage, false)

	ben := contacts[1]
	be.Equal(t, ben.ID, "2")
	be.Equal(t, ben.Company, "Acme")
	be.Equal(t, ben.JobTitle, "CTO")
	be.Equal(t, ben.Department, "R&D")
	be.Equal(t, ben.URLAddresses, []contact.LabeledValue{{ID: "2", Label: "work", Value: "https://ben.example"}})
	be.Equal(t, ben.HasImage, true)
	be.Equal(t, ben.ThumbnailPath, "content://com.android.contacts/contacts/2/photo")
}

func TestGetAllOrdersByDisplayName(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 1, "Zoe Young", 0)
	f.addRawContact(20, 2, "Ann Lee", 0)
	f.addData(10, mimeName, map[string]any{"data2": "Zoe"})
	f.addData(20, mimeName, map[string]any{"data2": "Ann"})

	contacts, err := New(f.path).GetAll(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, len(contacts), 2)
	be.Equal(t, contacts[0].DisplayName, "Ann Lee")
	be.Equal(t, contacts[1].DisplayName, "Zoe Young")
}

func TestGetAllSkipsDeletedRawContacts(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 1, "Ann Lee", 0)
	f.addRawContact(20, 2, "Gone Person", 1)
	f.addData(10, mimeName, map[string]any{"data2": "Ann"})
	f.addData(20, mimeName, map[string]any{"data2": "Gone"})

	contacts, err := New(f.path).GetAll(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, len(contacts), 1)
	be.Equal(t, contacts[0].ID, "1")
}

func TestGetAllDropsUnreadablePhoneRow(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 2, "Ben Ray", 0)
	f.addData(10, mimePhone, map[string]any{"data2": phoneTypeWork})

	contacts, err := New(f.path).GetAll(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, len(contacts), 1)
	be.Equal(t, contacts[0].ID, "2")
	be.Equal(t, len(contacts[0].PhoneNumbers), 0)
}

func TestGetAllBirthdayIgnoresAnniversary(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 1, "Ann Lee", 0)
	f.addData(10, mimeEvent, map[string]any{"data1": "2010-06-15", "data2": eventTypeAnniversary})
	f.addData(10, mimeEvent, map[string]any{"data1": "1990-02-03", "data2": eventTypeBirthday})

	contacts, err := New(f.path).GetAll(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, contacts[0].Birthday, "1990-02-03")
}

func TestGetAllUnknownTypeCodeResolvesToOther(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 1, "Ann Lee", 0)
	f.addData(10, mimePhone, map[string]any{"data1": "555-9999", "data2": 77})
	f.addData(10, mimePhone, map[string]any{"data1": "555-8888"})

	contacts, err := New(f.path).GetAll(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, contacts[0].PhoneNumbers, []contact.LabeledValue{
		{ID: "1", Label: "other", Value: "555-9999"},
		{ID: "1", Label: "other", Value: "555-8888"},
	})
}

func TestGetAllDeniedBeforeOpeningStore(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.db"))

	status, err := store.PermissionStatus()
	be.Err(t, err, nil)
	be.Equal(t, status, contact.PermissionNotDetermined)

	_, err = store.GetAll(context.Background())
	var typed *contact.Error
	be.True(t, errors.As(err, &typed))
	be.Equal(t, typed.Code, contact.ErrorCodePermissionDenied)
}

func TestRequestPermissionReflectsReadability(t *testing.T) {
	f := newFixture(t)
	granted, err := New(f.path).RequestPermission(context.Background())
	be.Err(t, err, nil)
	be.True(t, granted)

	granted, err = New(filepath.Join(t.TempDir(), "missing.db")).RequestPermission(context.Background())
	be.Err(t, err, nil)
	be.True(t, !granted)
}

func TestPermissionStatusRequiresPath(t *testing.T) {
	_, err := New("").PermissionStatus()
	var typed *contact.Error
	be.True(t, errors.As(err, &typed))
	be.Equal(t, typed.Code, contact.ErrorCodeStoreUnavailable)
}

func TestGetAllCancelledContext(t *testing.T) {
	f := newFixture(t)
	f.addRawContact(10, 1, "Ann Lee", 0)
	f.addData(10, mimeName, map[string]any{"data2": "Ann"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(f.path).GetAll(ctx)
	be.True(t, err != nil)
}
