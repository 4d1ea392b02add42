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

// dedupSet is the set of directory paths already scheduled for a
// walk. It guarantees at-most-once visitation even if a reparse loop
// or duplicate push occurs: a mutex-guarded map whose tryAdd reports
// whether the key was newly inserted. A collision is the expected
// "already scheduled" case, not a bug.
type dedupSet struct {
	lock sync.Mutex
	seen map[string]struct{}
}

func newDedupSet() *dedupSet {
	return &dedupSet{seen: make(map[string]struct{})}
}

// tryAdd returns true iff path was not already present, inserting it
// atomically with the check. Windows paths are compared
// case-insensitively, since NTFS path lookups are case-preserving but
// not case-sensitive by default.
func (d *dedupSet) tryAdd(path string) bool {
	key := normalizeForDedup(path)

	d.lock.Lock()
	defer d.lock.Unlock()

	if _, already := d.seen[key]; already {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

func (d *dedupSet) len() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.seen)
}
