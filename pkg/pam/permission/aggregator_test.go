package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	aliceCyberark = GrantingSource{Application: "CyberArk PAM", NativeIdentity: "alice.admin"}
	aliceAD       = GrantingSource{Application: "Active Directory", NativeIdentity: "alice"}
	financeGroup  = GrantingSource{Application: "CyberArk PAM", Group: "Finance-Admins"}
)

func TestMergeByRightGroupsSourcesUnderOneRight(t *testing.T) {
	grants := []Grant{
		{Right: "Use Accounts", Source: aliceCyberark},
		{Right: "List Accounts", Source: aliceCyberark},
		{Right: "Use Accounts", Source: financeGroup},
	}

	merged := MergeByRight(grants)

	assert.Equal(t, []MergedGrant{
		{Right: "Use Accounts", Sources: []GrantingSource{aliceCyberark, financeGroup}},
		{Right: "List Accounts", Sources: []GrantingSource{aliceCyberark}},
	}, merged)
}

func TestMergeByRightDeduplicatesSources(t *testing.T) {
	grants := []Grant{
		{Right: "Use Accounts", Source: aliceCyberark},
		{Right: "Use Accounts", Source: aliceCyberark},
	}

	merged := MergeByRight(grants)

	assert.Len(t, merged, 1)
	assert.Equal(t, []GrantingSource{aliceCyberark}, merged[0].Sources)
}

func TestMergeByRightKeepsFirstAppearanceOrder(t *testing.T) {
	grants := []Grant{
		{Right: "Retrieve", Source: aliceAD},
		{Right: "Add", Source: aliceAD},
		{Right: "Retrieve", Source: financeGroup},
		{Right: "Delete", Source: financeGroup},
	}

	merged := MergeByRight(grants)

	rights := make([]string, 0, len(merged))
	for _, m := range merged {
		rights = append(rights, m.Right)
	}
	assert.Equal(t, []string{"Retrieve", "Add", "Delete"}, rights)
}

func TestMergeByRightEmpty(t *testing.T) {
	assert.Empty(t, MergeByRight(nil))
	assert.Empty(t, MergeByRight([]Grant{}))
}

func TestFlattenRoundTrip(t *testing.T) {
	merged := []MergedGrant{
		{Right: "Use Accounts", Sources: []GrantingSource{aliceCyberark, financeGroup}},
		{Right: "List Accounts", Sources: []GrantingSource{aliceAD}},
	}

	assert.Equal(t, merged, MergeByRight(Flatten(merged)))
}

func TestMergeByRightIdempotent(t *testing.T) {
	grants := []Grant{
		{Right: "Use Accounts", Source: aliceCyberark},
		{Right: "Use Accounts", Source: financeGroup},
		{Right: "List Accounts", Source: financeGroup},
	}

	once := MergeByRight(grants)
	twice := MergeByRight(Flatten(once))
	assert.Equal(t, once, twice)
}
