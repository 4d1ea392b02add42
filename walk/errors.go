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

import "fmt"

// ErrorKind is the opaque per-entry failure taxonomy. It is produced,
// never a raw OS error type - callers switch on the kind, not on
// platform-specific error values.
type ErrorKind uint8

const (
	ErrUnknown ErrorKind = iota
	ErrUnauthorized
	ErrPathTooLong
	ErrNotFound
	ErrIoError
	ErrSecurityError
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnauthorized:
		return "Unauthorized"
	case ErrPathTooLong:
		return "PathTooLong"
	case ErrNotFound:
		return "NotFound"
	case ErrIoError:
		return "IoError"
	case ErrSecurityError:
		return "SecurityError"
	default:
		return "Unknown"
	}
}

// classifiedError pairs an ErrorKind with the wrapped cause so callers
// that need the underlying error (tests, logging) can still get it.
type classifiedError struct {
	kind ErrorKind
	err  error
}

func (c *classifiedError) Error() string {
	return formatClassifiedError(c.kind, c.err)
}

func (c *classifiedError) Unwrap() error {
	return c.err
}

func (c *classifiedError) Kind() ErrorKind {
	return c.kind
}

func formatClassifiedError(kind ErrorKind, err error) string {
	if err == nil {
		return kind.String()
	}
	return fmt.Sprintf("%s: %v", kind, err)
}

func classify(kind ErrorKind, err error) *classifiedError {
	return &classifiedError{kind: kind, err: err}
}
