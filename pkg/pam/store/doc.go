// Package store defines the storage interfaces consumed by the PAM
// services. Implementations live in the gorm subpackage; tests use hand
// mocks.
//
// Search-style methods take query.Filter predicates. Each method documents
// the table aliases its FROM clause exposes, so services can construct
// predicates against them:
//
//   - identity queries: identities i
//   - group queries: managed_attributes g
//   - link queries: links l
//   - entitlement-group queries: identity_entitlements ie joined to
//     managed_attributes g
package store
