// Package cnstore reads contacts from the native Contacts.framework store
// (CNContactStore): the object-graph platform where the store hands back
// pre-merged contact objects instead of attribute rows.
//
// The darwin backend fetches each contact with a fixed key set in given-name
// sort order; a Go adapter then decomposes every pre-merged contact into the
// same attribute row shape the relational backend streams, so both
// platforms share one aggregation fold in package contact.
//
// Operational notes
//
//   - The live backend is darwin-only and uses direct cgo bindings to
//     Contacts.framework. Non-darwin or non-cgo builds return
//     ErrUnsupportedPlatform.
//   - Contact notes are not fetched: CNContactNoteKey requires the
//     com.apple.developer.contacts.notes entitlement and fetching it
//     without one fails the whole request.
//   - Thumbnails are written to the temporary directory by the bridge and
//     surface as file paths; image bytes never cross the boundary.
//   - RequestPermission presents the system dialog; the limited
//     authorization state (user granted a subset) is reported as
//     contact.PermissionLimited.
package cnstore
