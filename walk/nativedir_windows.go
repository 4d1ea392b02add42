//go:build windows

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
	"path/filepath"

	"golang.org/x/sys/windows"
)

// nativeIterState wraps the FindFirstFile/FindNextFile/FindClose
// handle lifecycle. done latches permanently once either the handle
// failed to open or a find-next call failed; mid-iteration errors end
// the sequence, they are never surfaced.
type nativeIterState struct {
	handle  windows.Handle
	data    windows.Win32finddata
	pending bool
	done    bool
}

func openNativeDirIter(dir, pattern string) nativeIterState {
	searchPath := filepath.Join(dir, pattern)
	pathPtr, err := windows.UTF16PtrFromString(searchPath)
	if err != nil {
		return nativeIterState{done: true}
	}

	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(pathPtr, &data)
	if err != nil {
		return nativeIterState{done: true}
	}

	return nativeIterState{handle: handle, data: data, pending: true}
}

func (s *nativeIterState) next() (childEntry, bool) {
	if s.done {
		return childEntry{}, false
	}

	if s.pending {
		s.pending = false
		entry := childEntry{
			name:       windows.UTF16ToString(s.data.FileName[:]),
			attributes: s.data.FileAttributes,
		}
		return entry, true
	}

	if err := windows.FindNextFile(s.handle, &s.data); err != nil {
		s.done = true
		s.close()
		return childEntry{}, false
	}

	return childEntry{
		name:       windows.UTF16ToString(s.data.FileName[:]),
		attributes: s.data.FileAttributes,
	}, true
}

func (s *nativeIterState) close() {
	if s.handle != 0 && s.handle != windows.InvalidHandle {
		_ = windows.FindClose(s.handle)
		s.handle = 0
	}
	s.done = true
}
