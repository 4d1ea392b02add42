//go:build !windows

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

import "os"

// nativeIterState has no real find-handle off Windows; it reads the
// directory once with chunked os.File.Readdir calls and serves
// entries from that slice. This keeps the package buildable during
// off-target development; the Windows build (nativedir_windows.go) is
// the real iterator.
type nativeIterState struct {
	entries []childEntry
	index   int
	done    bool
}

const readdirChunk = 10240

func openNativeDirIter(dir, pattern string) nativeIterState {
	_ = pattern

	f, err := os.Open(dir)
	if err != nil {
		return nativeIterState{done: true}
	}
	defer f.Close()

	var entries []childEntry
	for {
		infos, err := f.Readdir(readdirChunk)
		for _, info := range infos {
			attrs := uint32(0)
			if info.IsDir() {
				attrs = fileAttributeDirectory
			}
			entries = append(entries, childEntry{name: info.Name(), attributes: attrs})
		}
		if err != nil {
			break
		}
	}

	return nativeIterState{entries: entries}
}

func (s *nativeIterState) next() (childEntry, bool) {
	if s.done || s.index >= len(s.entries) {
		return childEntry{}, false
	}
	entry := s.entries[s.index]
	s.index++
	return entry, true
}

func (s *nativeIterState) close() {
	s.done = true
}
