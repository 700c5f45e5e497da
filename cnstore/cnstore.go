package cnstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/spachava753/rolodex/contact"
)

// ErrUnsupportedPlatform is returned when the Contacts.framework backend is
// unavailable on the current OS/runtime.
var ErrUnsupportedPlatform = errors.New("cnstore: unsupported platform")

// Store reads the native Contacts.framework store (CNContactStore).
type Store struct{}

// New returns a Store over the process's contact store. No native calls
// happen until a method is invoked.
func New() *Store {
	return &Store{}
}

// PermissionStatus reports the current Contacts authorization status,
// including the limited state where the user granted a subset only.
func (s *Store) PermissionStatus() (contact.PermissionStatus, error) {
	return authorizationStatus()
}

// RequestPermission presents the platform grant dialog and reports the
// user's decision. A denial is a false result, not an error; errors are
// reserved for backend failures.
func (s *Store) RequestPermission(_ context.Context) (bool, error) {
	return requestAccess()
}

// GetAll fetches every contact in one enumeration pass and returns them in
// the store's given-name sort order. Each pre-merged native contact is
// decomposed into attribute rows so the fold is shared with the relational
// backend. GetAll fails before touching the store when permission is not
// granted and never requests permission itself.
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

	snaps, err := fetchSnapshots()
	if err != nil {
		return nil, err
	}
	src := newSnapshotSource(snaps)
	defer src.Close()

	return contact.Aggregate(ctx, src)
}
