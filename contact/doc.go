// Package contact provides the platform-independent address book core: the
// contact model, label normalization, and the single-pass row aggregation
// engine shared by every backend.
//
// Backends (provider, cnstore) differ only in how they produce attribute
// rows; the merge logic lives here once.
//
// Exported API (recommended usage order)
//
//  1. Store
//     The read-only surface backends implement: PermissionStatus,
//     RequestPermission, and GetAll. Callers hold a Store and never touch
//     the row plumbing below.
//  2. Aggregate(ctx, src)
//     Fold one open RowSource session into finalized contacts. Used by
//     backend GetAll implementations and directly testable with synthetic
//     row streams.
//  3. Resolve(class, code, raw)
//     Map a platform attribute type code (plus optional custom label) to the
//     normalized label vocabulary: home, work, mobile, main, other, or a
//     verbatim custom label.
//
// Primary models
//
//   - Contact: one fully-aggregated address book entry.
//   - LabeledValue: one labeled phone/email/URL value.
//   - PostalAddress: one structured postal address.
//   - AttributeRow: one unit of contact data tagged with owner id and kind.
//   - PermissionStatus: granted, denied, not_determined, limited.
//   - Error: typed backend error (permission_denied, store_unavailable,
//     enumeration_failed, unknown).
//
// Operational notes
//
//   - Aggregation is snapshot-based and read-only: one GetAll equals one
//     consistent pass, with no caching across calls.
//   - Malformed individual rows degrade gracefully (field or row dropped);
//     only store-session failures surface as errors, and a failed pass
//     never returns partial results.
package contact
