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

import "github.com/pkg/errors"

// getSecurityDescriptor and managedOwner have no non-Windows
// implementation - DACLs and SIDs are a Win32 concept. These stubs
// exist only so the package builds during development off-target; the
// Windows build (security_windows.go) is the real one.

func getSecurityDescriptor(path string, includeInherited bool) (*securityDescriptor, error) {
	return nil, errors.New("ACL extraction is only supported on Windows")
}

func managedOwner(path string) (string, error) {
	return "", errors.New("owner resolution is only supported on Windows")
}

func lookupAccountSid(sid string) (string, error) {
	return sid, errors.New("SID translation is only supported on Windows")
}
