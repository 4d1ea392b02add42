package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryIsDirectory(t *testing.T) {
	dir := newEntry(`C:\data\sub`, fileAttributeDirectory)
	file := newEntry(`C:\data\a.txt`, 0)

	assert.True(t, dir.IsDirectory())
	assert.False(t, file.IsDirectory())
}

func TestWithSecuritySetsModifiedAndClearsError(t *testing.T) {
	e := newEntry(`C:\data\a.txt`, 0).withError(ErrIoError, assertErr("boom"))
	assert.NotEmpty(t, e.Error)

	e = e.withSecurity(`CONTOSO\alice`, map[string]RightsSet{"CONTOSO\\alice": {"Read"}})

	assert.True(t, e.Modified)
	assert.Empty(t, e.Error)
	assert.Equal(t, `CONTOSO\alice`, e.Owner)
}

func TestWithErrorClearsSecurityFields(t *testing.T) {
	e := newEntry(`C:\data\a.txt`, 0).withSecurity("owner", map[string]RightsSet{"owner": {"Read"}})

	e = e.withError(ErrUnauthorized, assertErr("denied"))

	assert.False(t, e.Modified)
	assert.Empty(t, e.Owner)
	assert.Nil(t, e.ACL)
	assert.Contains(t, e.Error, "Unauthorized")
}

func TestRenderFormat(t *testing.T) {
	e := newEntry(`C:\data\a.txt`, 0).withSecurity("owner", map[string]RightsSet{"owner": {"Read"}})

	rendered := e.Render()
	assert.Equal(t, `C:\data\a.txt | owner | 1 | true | `, rendered)
}

func TestRenderACLSortedByIdentity(t *testing.T) {
	e := newEntry(`C:\data`, fileAttributeDirectory).withSecurity("owner", map[string]RightsSet{
		"zebra": {"Read"},
		"alpha": {"FullControl"},
	})

	assert.Equal(t, "alpha=FullControl; zebra=Read", e.RenderACL())
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
