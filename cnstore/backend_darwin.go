//go:build darwin && cgo

package cnstore

/*
#cgo CFLAGS: -fobjc-arc
#cgo LDFLAGS: -framework Foundation -framework Contacts
#include "bridge_darwin.h"
#include <stdlib.h>
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/spachava753/rolodex/contact"
)

func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func labelCodeFromC(code C.int) contact.LabelCode {
	switch code {
	case C.CNSTORE_LABEL_CUSTOM:
		return contact.LabelCustom
	case C.CNSTORE_LABEL_HOME:
		return contact.LabelHome
	case C.CNSTORE_LABEL_WORK:
		return contact.LabelWork
	case C.CNSTORE_LABEL_MOBILE:
		return contact.LabelMobile
	case C.CNSTORE_LABEL_MAIN:
		return contact.LabelMain
	default:
		return contact.LabelOther
	}
}

func errorCodeFromC(code C.int) contact.ErrorCode {
	switch code {
	case C.CNSTORE_ERR_PERMISSION_DENIED:
		return contact.ErrorCodePermissionDenied
	case C.CNSTORE_ERR_STORE:
		return contact.ErrorCodeStoreUnavailable
	case C.CNSTORE_ERR_ENUMERATION:
		return contact.ErrorCodeEnumerationFailed
	default:
		return contact.ErrorCodeUnknown
	}
}

func errorFromC(cerr C.CNStoreError) error {
	if cerr.code == C.CNSTORE_ERR_NONE {
		msg := strings.TrimSpace(goString(cerr.message))
		if msg == "" {
			return nil
		}
	}
	return &contact.Error{Code: errorCodeFromC(cerr.code), Message: strings.TrimSpace(goString(cerr.message))}
}

func authorizationStatus() (contact.PermissionStatus, error) {
	switch C.cnstore_authorization_status() {
	case C.CNSTORE_AUTH_NOT_DETERMINED:
		return contact.PermissionNotDetermined, nil
	case C.CNSTORE_AUTH_RESTRICTED:
		return contact.PermissionDenied, nil
	case C.CNSTORE_AUTH_DENIED:
		return contact.PermissionDenied, nil
	case C.CNSTORE_AUTH_AUTHORIZED:
		return contact.PermissionGranted, nil
	case C.CNSTORE_AUTH_LIMITED:
		return contact.PermissionLimited, nil
	default:
		return "", &contact.Error{Code: contact.ErrorCodeUnknown, Message: "unknown authorization status"}
	}
}

func requestAccess() (bool, error) {
	var cerr C.CNStoreError
	defer C.cnstore_free_error(&cerr)
	granted := C.cnstore_request_access(&cerr)
	if granted < 0 {
		return false, errorFromC(cerr)
	}
	return granted == 1, nil
}

func fetchSnapshots() ([]snapshot, error) {
	var out C.CNStoreContactList
	var cerr C.CNStoreError
	defer C.cnstore_free_error(&cerr)
	if C.cnstore_fetch_contacts(&out, &cerr) == 0 {
		return nil, errorFromC(cerr)
	}
	defer C.cnstore_free_contact_list(&out)

	items := unsafe.Slice(out.items, int(out.items_len))
	snaps := make([]snapshot, 0, len(items))
	for i := range items {
		snap := snapshot{
			id:            goString(items[i].id),
			givenName:     goString(items[i].given_name),
			middleName:    goString(items[i].middle_name),
			familyName:    goString(items[i].family_name),
			company:       goString(items[i].company),
			jobTitle:      goString(items[i].job_title),
			department:    goString(items[i].department),
			birthday:      goString(items[i].birthday),
			thumbnailPath: goString(items[i].thumbnail_path),
			hasImage:      items[i].has_image != 0,
		}

		phones := unsafe.Slice(items[i].phones, int(items[i].phones_len))
		for j := range phones {
			snap.phones = append(snap.phones, labeledItem{
				code:        labelCodeFromC(phones[j].label),
				customLabel: goString(phones[j].custom_label),
				value:       goString(phones[j].value),
			})
		}

		emails := unsafe.Slice(items[i].emails, int(items[i].emails_len))
		for j := range emails {
			snap.emails = append(snap.emails, labeledItem{
				code:        labelCodeFromC(emails[j].label),
				customLabel: goString(emails[j].custom_label),
				value:       goString(emails[j].value),
			})
		}

		postals := unsafe.Slice(items[i].postal_addresses, int(items[i].postal_addresses_len))
		for j := range postals {
			snap.postals = append(snap.postals, postalItem{
				street:         goString(postals[j].street),
				city:           goString(postals[j].city),
				state:          goString(postals[j].state),
				postalCode:     goString(postals[j].postal_code),
				country:        goString(postals[j].country),
				isoCountryCode: goString(postals[j].iso_country_code),
				code:           labelCodeFromC(postals[j].label),
				customLabel:    goString(postals[j].custom_label),
			})
		}

		urls := unsafe.Slice(items[i].urls, int(items[i].urls_len))
		for j := range urls {
			snap.urls = append(snap.urls, labeledItem{
				code:        labelCodeFromC(urls[j].label),
				customLabel: goString(urls[j].custom_label),
				value:       goString(urls[j].value),
			})
		}

		snaps = append(snaps, snap)
	}
	return snaps, nil
}
