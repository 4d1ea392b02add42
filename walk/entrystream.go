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
	"context"
	"time"
)

// disposeTimeout bounds how long Dispose waits for workers to
// quiesce after cancellation.
const disposeTimeout = 30 * time.Second

// EntryStream is a pull-based lazy sequence: a finite,
// non-restartable view over the walker's output channel, with
// cooperative cancellation and a bounded-wait Dispose.
type EntryStream struct {
	entries chan FileSystemEntry
	cancel  context.CancelFunc
	done    chan struct{}
	stats   *WalkStats
}

func newEntryStream(entries chan FileSystemEntry, cancel context.CancelFunc, done chan struct{}, stats *WalkStats) *EntryStream {
	return &EntryStream{entries: entries, cancel: cancel, done: done, stats: stats}
}

// Stats exposes the walk's running counters. They keep updating while
// the walk is live; once Next has reported end-of-stream the values
// are final.
func (s *EntryStream) Stats() *WalkStats {
	return s.stats
}

// Next blocks until an entry is available, the walk completes, or
// cancellation is observed, returning ok=false in the latter two
// cases.
func (s *EntryStream) Next() (FileSystemEntry, bool) {
	entry, ok := <-s.entries
	return entry, ok
}

// Dispose triggers cancellation and waits up to disposeTimeout for
// the underlying workers to quiesce, draining any entries already in
// flight so they don't leak a blocked sender.
func (s *EntryStream) Dispose() {
	s.cancel()

	deadline := time.NewTimer(disposeTimeout)
	defer deadline.Stop()

	for {
		select {
		case _, ok := <-s.entries:
			if !ok {
				return
			}
		case <-s.done:
			return
		case <-deadline.C:
			return
		}
	}
}

// PathStream is the lightweight counterpart produced by
// EnumeratePaths: a lazy sequence of path strings with no security
// resolution performed at all.
type PathStream struct {
	paths  chan string
	cancel context.CancelFunc
	done   chan struct{}
}

func newPathStream(paths chan string, cancel context.CancelFunc, done chan struct{}) *PathStream {
	return &PathStream{paths: paths, cancel: cancel, done: done}
}

func (s *PathStream) Next() (string, bool) {
	path, ok := <-s.paths
	return path, ok
}

func (s *PathStream) Dispose() {
	s.cancel()

	deadline := time.NewTimer(disposeTimeout)
	defer deadline.Stop()

	for {
		select {
		case _, ok := <-s.paths:
			if !ok {
				return
			}
		case <-s.done:
			// paths is closed before done, so this drain ends at once.
			for range s.paths {
			}
			return
		case <-deadline.C:
			return
		}
	}
}
