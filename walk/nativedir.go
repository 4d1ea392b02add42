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

// childEntry is one raw record yielded by a NativeDirIter, before any
// filtering or security resolution.
type childEntry struct {
	name       string
	attributes uint32
}

// NativeDirIter iterates one directory's immediate children through
// the native find-handle API: a single owner of a single handle,
// released on every exit path. It is single-use and not safe for
// concurrent calls to next/close from multiple goroutines - each
// worker opens its own.
type NativeDirIter struct {
	state nativeIterState
}

// newNativeDirIter opens dir (joined with pattern) for iteration. An
// unreadable or nonexistent directory yields an iterator that simply
// produces no children, not an error - openNativeDirIter folds that
// case into state.done.
func newNativeDirIter(dir, pattern string) *NativeDirIter {
	return &NativeDirIter{state: openNativeDirIter(dir, pattern)}
}

// next returns the next child, or ok=false once the sequence is
// exhausted - including the case where a find-next call failed
// mid-iteration, which terminates the sequence cleanly rather than
// surfacing an error through this component.
func (it *NativeDirIter) next() (childEntry, bool) {
	for {
		entry, ok := it.state.next()
		if !ok {
			return childEntry{}, false
		}
		if skipChildName(entry.name) {
			continue
		}
		return entry, true
	}
}

// close releases the find-handle. Safe to call multiple times and
// safe to call without having exhausted the sequence - early abort is
// one of the exit paths the handle must survive.
func (it *NativeDirIter) close() {
	it.state.close()
}
