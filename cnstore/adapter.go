package cnstore

import (
	"io"

	"github.com/spachava753/rolodex/contact"
)

// snapshot is one pre-merged native contact as returned by the backend.
// Note is absent: reading CNContactNoteKey requires the Apple notes
// entitlement, so it is not fetched.
type snapshot struct {
	id            string
	givenName     string
	middleName    string
	familyName    string
	company       string
	jobTitle      string
	department    string
	birthday      string
	phones        []labeledItem
	emails        []labeledItem
	postals       []postalItem
	urls          []labeledItem
	thumbnailPath string
	hasImage      bool
}

type labeledItem struct {
	code        contact.LabelCode
	customLabel string
	value       string
}

type postalItem struct {
	street         string
	city           string
	state          string
	postalCode     string
	country        string
	isoCountryCode string
	code           contact.LabelCode
	customLabel    string
}

// snapshotSource decomposes pre-merged contacts into attribute rows so the
// object-graph platform shares the exact fold the relational platform uses.
type snapshotSource struct {
	rows []contact.AttributeRow
	pos  int
}

func newSnapshotSource(snaps []snapshot) *snapshotSource {
	rows := make([]contact.AttributeRow, 0, len(snaps)*4)
	for i := range snaps {
		rows = append(rows, snapshotRows(&snaps[i])...)
	}
	return &snapshotSource{rows: rows}
}

func (s *snapshotSource) Next() (contact.AttributeRow, error) {
	if s.pos >= len(s.rows) {
		return contact.AttributeRow{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func (s *snapshotSource) Close() error {
	s.rows = nil
	return nil
}

func snapshotRows(snap *snapshot) []contact.AttributeRow {
	// The native store carries no display name; compose it from the parts.
	display := contact.ComposeDisplayName(snap.givenName, snap.middleName, snap.familyName)

	rows := []contact.AttributeRow{
		{
			ContactID:   snap.id,
			Kind:        contact.RowName,
			DisplayName: display,
			GivenName:   snap.givenName,
			MiddleName:  snap.middleName,
			FamilyName:  snap.familyName,
		},
		{
			ContactID:  snap.id,
			Kind:       contact.RowOrganization,
			Company:    snap.company,
			JobTitle:   snap.jobTitle,
			Department: snap.department,
		},
	}
	for _, item := range snap.phones {
		rows = append(rows, contact.AttributeRow{
			ContactID:   snap.id,
			Kind:        contact.RowPhone,
			Value:       item.value,
			Label:       item.code,
			CustomLabel: item.customLabel,
		})
	}
	for _, item := range snap.emails {
		rows = append(rows, contact.AttributeRow{
			ContactID:   snap.id,
			Kind:        contact.RowEmail,
			Value:       item.value,
			Label:       item.code,
			CustomLabel: item.customLabel,
		})
	}
	for _, addr := range snap.postals {
		rows = append(rows, contact.AttributeRow{
			ContactID:      snap.id,
			Kind:           contact.RowPostal,
			Street:         addr.street,
			City:           addr.city,
			State:          addr.state,
			PostalCode:     addr.postalCode,
			Country:        addr.country,
			ISOCountryCode: addr.isoCountryCode,
			Label:          addr.code,
			CustomLabel:    addr.customLabel,
		})
	}
	for _, item := range snap.urls {
		rows = append(rows, contact.AttributeRow{
			ContactID:   snap.id,
			Kind:        contact.RowWebsite,
			Value:       item.value,
			Label:       item.code,
			CustomLabel: item.customLabel,
		})
	}
	if snap.birthday != "" {
		rows = append(rows, contact.AttributeRow{
			ContactID: snap.id,
			Kind:      contact.RowEvent,
			Event:     contact.EventBirthday,
			EventDate: snap.birthday,
		})
	}
	if snap.hasImage && snap.thumbnailPath != "" {
		rows = append(rows, contact.AttributeRow{
			ContactID:     snap.id,
			Kind:          contact.RowPhoto,
			ThumbnailPath: snap.thumbnailPath,
		})
	}
	return rows
}
