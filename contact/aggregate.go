package contact

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Aggregate folds one row stream into finalized contacts.
//
// The pass is single-threaded and runs in O(rows) time with O(distinct
// contacts) auxiliary space: rows are grouped by contact id into mutable
// builders held in an insertion-ordered map, and output order equals the
// first-occurrence order of each id in the stream. Scalar blocks (name,
// organization, note) are last-write-wins; labeled lists append in row
// order. A multi-valued row whose primary value is unreadable is dropped
// without affecting the rest of its contact.
//
// Malformed rows are never an error. Aggregate fails only when src fails or
// ctx is cancelled, and then returns no partial result: a truncated contact
// set would be indistinguishable from a legitimately empty address book.
// The caller owns the src session; Aggregate does not close it.
func Aggregate(ctx context.Context, src RowSource) ([]Contact, error) {
	builders := make(map[string]*builder)
	order := make([]string, 0, 64)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id := strings.TrimSpace(row.ContactID)
		if id == "" {
			continue
		}
		b, ok := builders[id]
		if !ok {
			b = &builder{id: id, displayName: row.DisplayName}
			builders[id] = b
			order = append(order, id)
		}
		b.apply(row)
	}

	contacts := make([]Contact, 0, len(order))
	for _, id := range order {
		contacts = append(contacts, builders[id].finalize())
	}
	return contacts, nil
}

// builder accumulates one contact's fields during a single pass. It is
// owned exclusively by Aggregate and discarded after finalize.
type builder struct {
	id          string
	displayName string
	givenName   string
	middleName  string
	familyName  string
	company     string
	jobTitle    string
	department  string
	note        string
	birthday    string
	emails      []LabeledValue
	phones      []LabeledValue
	postals     []PostalAddress
	urls        []LabeledValue
	thumbnail   string
	hasImage    bool
}

func (b *builder) apply(row AttributeRow) {
	switch row.Kind {
	case RowName:
		b.givenName = row.GivenName
		b.middleName = row.MiddleName
		b.familyName = row.FamilyName
	case RowOrganization:
		b.company = row.Company
		b.jobTitle = row.JobTitle
		b.department = row.Department
	case RowPhone:
		if row.Value == "" {
			return
		}
		b.phones = append(b.phones, LabeledValue{
			ID:    b.id,
			Label: Resolve(ClassPhone, row.Label, row.CustomLabel),
			Value: row.Value,
		})
	case RowEmail:
		if row.Value == "" {
			return
		}
		b.emails = append(b.emails, LabeledValue{
			ID:    b.id,
			Label: Resolve(ClassEmail, row.Label, row.CustomLabel),
			Value: row.Value,
		})
	case RowWebsite:
		if row.Value == "" {
			return
		}
		b.urls = append(b.urls, LabeledValue{
			ID:    b.id,
			Label: Resolve(ClassWebsite, row.Label, row.CustomLabel),
			Value: row.Value,
		})
	case RowPostal:
		b.postals = append(b.postals, PostalAddress{
			Street:         row.Street,
			City:           row.City,
			State:          row.State,
			PostalCode:     row.PostalCode,
			Country:        row.Country,
			ISOCountryCode: row.ISOCountryCode,
			Label:          Resolve(ClassPostal, row.Label, row.CustomLabel),
		})
	case RowNote:
		b.note = row.Note
	case RowEvent:
		if row.Event == EventBirthday && row.EventDate != "" {
			b.birthday = row.EventDate
		}
	case RowPhoto:
		if row.ThumbnailPath != "" {
			b.thumbnail = row.ThumbnailPath
			b.hasImage = true
		}
	}
}

func (b *builder) finalize() Contact {
	// Lists stay non-nil so the contract's "empty, never null" holds through
	// serialization.
	if b.emails == nil {
		b.emails = []LabeledValue{}
	}
	if b.phones == nil {
		b.phones = []LabeledValue{}
	}
	if b.postals == nil {
		b.postals = []PostalAddress{}
	}
	if b.urls == nil {
		b.urls = []LabeledValue{}
	}
	return Contact{
		ID:              b.id,
		DisplayName:     b.displayName,
		GivenName:       b.givenName,
		MiddleName:      b.middleName,
		FamilyName:      b.familyName,
		Company:         b.company,
		JobTitle:        b.jobTitle,
		Department:      b.department,
		Note:            b.note,
		Birthday:        b.birthday,
		Emails:          b.emails,
		PhoneNumbers:    b.phones,
		PostalAddresses: b.postals,
		URLAddresses:    b.urls,
		ThumbnailPath:   b.thumbnail,
		HasImage:        b.hasImage,
	}
}
