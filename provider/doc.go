// Package provider reads contacts from a contacts-provider snapshot
// database: the relational, row-oriented contacts2.db layout with a generic
// data table keyed by mime type.
//
// The whole address book is read in one wide-projection cursor pass; rows
// stream through contact.Aggregate, which groups them by contact id in
// first-occurrence order. Native integer type codes are translated to
// contact.LabelCode before label resolution.
//
// Permission maps onto filesystem access to the snapshot file. The package
// cannot present a grant dialog, so RequestPermission only reports the
// current state; provisioning the snapshot and its permissions is the
// caller's concern.
//
// SQLite access uses github.com/mattn/go-sqlite3 (CGO required).
package provider
