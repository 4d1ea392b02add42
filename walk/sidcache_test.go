package walk

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidCacheStoreAndLookup(t *testing.T) {
	c := NewSidCache()

	_, ok := c.lookup("S-1-5-21-1-2-3-1001")
	assert.False(t, ok)

	c.store("S-1-5-21-1-2-3-1001", `CONTOSO\alice`)

	name, ok := c.lookup("S-1-5-21-1-2-3-1001")
	assert.True(t, ok)
	assert.Equal(t, `CONTOSO\alice`, name)
}

func TestSidCacheStoreFailureMemoizesSidItself(t *testing.T) {
	c := NewSidCache()
	sid := "S-1-5-21-9-9-9-9999"

	c.storeFailure(sid)

	name, ok := c.lookup(sid)
	assert.True(t, ok)
	assert.Equal(t, sid, name)
}

// TestSidCacheCoherence checks that the same SID observed twice -
// including under concurrent duplicate-insert races - always resolves
// to the same byte-identical name.
func TestSidCacheCoherence(t *testing.T) {
	c := NewSidCache()
	sid := "S-1-5-21-4-5-6-2001"

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.store(sid, `CONTOSO\bob`)
		}()
	}
	wg.Wait()

	name, ok := c.lookup(sid)
	assert.True(t, ok)
	assert.Equal(t, `CONTOSO\bob`, name)
}
