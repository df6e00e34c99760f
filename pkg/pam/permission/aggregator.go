// Package permission merges raw permission grants into deduplicated,
// display-ready entries.
package permission

// GrantingSource identifies where a right was granted from: an account
// (application + native identity) or a group. Compared structurally.
type GrantingSource struct {
	Application    string
	NativeIdentity string
	Group          string
}

// Grant is one raw (right, source) tuple.
type Grant struct {
	Right  string
	Source GrantingSource
}

// MergedGrant aggregates every source granting one right.
type MergedGrant struct {
	Right   string
	Sources []GrantingSource
}

// MergeByRight groups grants by right name, accumulating a deduplicated
// source list per right. Rights keep their order of first appearance;
// sources keep first-seen order within a right. Merging an already-merged
// list is a no-op.
func MergeByRight(grants []Grant) []MergedGrant {
	merged := make([]MergedGrant, 0, len(grants))
	index := make(map[string]int, len(grants))
	seen := make(map[string]map[GrantingSource]struct{}, len(grants))

	for _, grant := range grants {
		i, ok := index[grant.Right]
		if !ok {
			i = len(merged)
			index[grant.Right] = i
			merged = append(merged, MergedGrant{Right: grant.Right})
			seen[grant.Right] = make(map[GrantingSource]struct{}, 2)
		}
		if _, dup := seen[grant.Right][grant.Source]; dup {
			continue
		}
		seen[grant.Right][grant.Source] = struct{}{}
		merged[i].Sources = append(merged[i].Sources, grant.Source)
	}

	return merged
}

// Flatten expands merged grants back into raw tuples, preserving order.
// MergeByRight(Flatten(m)) == m for any merged list m.
func Flatten(merged []MergedGrant) []Grant {
	grants := make([]Grant, 0, len(merged))
	for _, m := range merged {
		for _, src := range m.Sources {
			grants = append(grants, Grant{Right: m.Right, Source: src})
		}
	}
	return grants
}
