// Package rolodex is a lightweight index for the subpackages in this module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/rolodex/contact
//     Platform-independent contact model, label normalization, and the
//     single-pass row aggregation engine.
//   - github.com/spachava753/rolodex/provider
//     Relational backend reading a contacts-provider snapshot database
//     (contacts2.db layout) through SQLite.
//   - github.com/spachava753/rolodex/cnstore
//     Object-graph backend reading Contacts.framework (CNContactStore) on
//     macOS; returns ErrUnsupportedPlatform elsewhere.
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/rolodex
//   - Then drill in with:
//     go doc github.com/spachava753/rolodex/contact
//     go doc github.com/spachava753/rolodex/provider
//     go doc github.com/spachava753/rolodex/cnstore
package rolodex
