// Package container implements access resolution for privileged-access
// containers (safes).
//
// A container's membership is the union of three sets: identities whose
// account carries a direct (Link-owned) target association, identities
// connected through a local group carrying a group-level (Attribute-owned)
// association, and identities connected through an external group whose
// PAM-side stub group carries the association. Membership and association
// can live on different managed-attribute objects - the external group
// holds membership, its stub holds the association - so effective access
// is necessarily a union of two join paths rather than a single join.
//
// The Service builds all of these as query.Filter predicates so the set
// arithmetic (union without double counting) happens in one counting
// query.
package container
