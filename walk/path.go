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

import "strings"

// normalizeForDedup folds case the way NTFS does for path comparison
// purposes: lookups are case-preserving but case-insensitive, so two
// spellings of the same directory must collapse to one key.
func normalizeForDedup(path string) string {
	return strings.ToLower(path)
}

// skipChildName reports whether a raw directory-entry name must never
// be surfaced to callers: "." / ".." and the conventional thumbnail
// index file, matched case-insensitively.
func skipChildName(name string) bool {
	if name == "." || name == ".." {
		return true
	}
	return strings.EqualFold(name, "Thumbs.db")
}
