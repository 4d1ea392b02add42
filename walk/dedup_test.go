package walk

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupSetTryAddFirstWins(t *testing.T) {
	d := newDedupSet()

	assert.True(t, d.tryAdd(`C:\data\sub`))
	assert.False(t, d.tryAdd(`C:\data\sub`))
	assert.Equal(t, 1, d.len())
}

func TestDedupSetCaseInsensitive(t *testing.T) {
	d := newDedupSet()

	assert.True(t, d.tryAdd(`C:\Data\Sub`))
	assert.False(t, d.tryAdd(`c:\data\sub`))
}

func TestDedupSetConcurrentInsertOnlyOneWinner(t *testing.T) {
	d := newDedupSet()
	const attempts = 64

	var wg sync.WaitGroup
	wins := make([]bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i] = d.tryAdd(`C:\shared\path`)
		}(i)
	}
	wg.Wait()

	count := 0
	for _, w := range wins {
		if w {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, d.len())
}
