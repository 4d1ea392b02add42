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

import (
	"fmt"
	"sync/atomic"
)

// WalkStats is a running summary of one walk: directories iterated,
// entries emitted, and per-entry errors observed. The counters are
// written by many workers concurrently, so reads taken while the walk
// is still running are individually accurate but not a consistent
// snapshot across fields. It is observability only - nothing in the
// per-entry contract depends on it.
type WalkStats struct {
	directoriesVisited int64
	entriesEmitted     int64
	errorsObserved     int64
}

func (s *WalkStats) addDirectoryVisited() { atomic.AddInt64(&s.directoriesVisited, 1) }
func (s *WalkStats) addEntryEmitted()     { atomic.AddInt64(&s.entriesEmitted, 1) }
func (s *WalkStats) addErrorObserved()    { atomic.AddInt64(&s.errorsObserved, 1) }

func (s *WalkStats) DirectoriesVisited() int64 { return atomic.LoadInt64(&s.directoriesVisited) }
func (s *WalkStats) EntriesEmitted() int64     { return atomic.LoadInt64(&s.entriesEmitted) }
func (s *WalkStats) ErrorsObserved() int64     { return atomic.LoadInt64(&s.errorsObserved) }

func (s *WalkStats) String() string {
	return fmt.Sprintf("%d directories, %d entries, %d errors",
		s.DirectoriesVisited(), s.EntriesEmitted(), s.ErrorsObserved())
}
