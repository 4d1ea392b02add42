// Copyright © 2017 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package walk

import "sync"

// SidCache is a process-wide, add-only mapping from the string form
// of a SID to its resolved account name. It may be shared across
// walks or created fresh per walk; either way it tolerates concurrent
// readers/writers and duplicate-insert races without producing two
// different answers for the same SID.
type SidCache struct {
	lock  sync.RWMutex
	names map[string]string
}

func NewSidCache() *SidCache {
	return &SidCache{names: make(map[string]string)}
}

// lookup returns the cached name for sid and true if present (a
// memoized failure - the SID string itself - counts as present).
func (c *SidCache) lookup(sid string) (string, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	name, ok := c.names[sid]
	return name, ok
}

// store records the resolution for sid. Concurrent duplicate stores
// for the same sid are idempotent by construction: translateSid
// always recomputes the same name for the same SID, so the first or
// last writer produces an identical value.
func (c *SidCache) store(sid, name string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.names[sid] = name
}

// storeFailure memoizes a failed translation as the string SID
// itself, so repeated lookups of an untranslatable SID are O(1).
func (c *SidCache) storeFailure(sid string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.names[sid] = sid
}
