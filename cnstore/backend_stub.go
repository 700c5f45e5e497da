//go:build !darwin || !cgo

package cnstore

import "github.com/spachava753/rolodex/contact"

func authorizationStatus() (contact.PermissionStatus, error) {
	return "", ErrUnsupportedPlatform
}

func requestAccess() (bool, error) {
	return false, ErrUnsupportedPlatform
}

func fetchSnapshots() ([]snapshot, error) {
	return nil, ErrUnsupportedPlatform
}
