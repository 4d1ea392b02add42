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
	"sort"
	"strings"
)

// FileSystemEntry is the immutable record produced for every visited
// path. Error and the security fields are mutually exclusive: a
// non-empty Error means Modified is false and Owner/ACL are empty.
type FileSystemEntry struct {
	Path       string
	Owner      string
	Attributes uint32
	ACL        map[string]RightsSet
	Modified   bool
	Error      string
}

// RightsSet is the named-rights rendering of a raw access mask.
type RightsSet []string

func (r RightsSet) String() string {
	return strings.Join(r, ",")
}

func newEntry(path string, attrs uint32) FileSystemEntry {
	return FileSystemEntry{Path: path, Attributes: attrs}
}

func (e FileSystemEntry) withSecurity(owner string, acl map[string]RightsSet) FileSystemEntry {
	e.Owner = owner
	e.ACL = acl
	e.Modified = true
	e.Error = ""
	return e
}

func (e FileSystemEntry) withError(kind ErrorKind, err error) FileSystemEntry {
	e.Owner = ""
	e.ACL = nil
	e.Modified = false
	e.Error = formatClassifiedError(kind, err)
	return e
}

func (e FileSystemEntry) IsDirectory() bool {
	return e.Attributes&fileAttributeDirectory != 0
}

// Render produces the canonical serialization:
// Path | Owner | ACL-count | Modified | Error, with empty fields
// rendered as empty strings.
func (e FileSystemEntry) Render() string {
	return fmt.Sprintf("%s | %s | %d | %t | %s",
		e.Path, e.Owner, len(e.ACL), e.Modified, e.Error)
}

// RenderACL produces a deterministic, sorted identity=rights listing,
// useful for tests and for the demo CLI's verbose mode.
func (e FileSystemEntry) RenderACL() string {
	if len(e.ACL) == 0 {
		return ""
	}
	identities := make([]string, 0, len(e.ACL))
	for id := range e.ACL {
		identities = append(identities, id)
	}
	sort.Strings(identities)

	parts := make([]string, 0, len(identities))
	for _, id := range identities {
		parts = append(parts, fmt.Sprintf("%s=%s", id, e.ACL[id].String()))
	}
	return strings.Join(parts, "; ")
}

const fileAttributeDirectory = 0x10
