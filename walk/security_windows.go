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
	"os/user"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var dAdvapi32 = syscall.NewLazyDLL("advapi32.dll") // lower case to tie in with Go's sysdll registration

// Refer to https://docs.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-getfilesecurityw for more details.
// x/sys/windows wraps GetNamedSecurityInfo but not GetFileSecurityW itself,
// so this one call is bound by hand.
var mGetFileSecurityW = dAdvapi32.NewProc("GetFileSecurityW")

// secInfoOwnerDacl requests exactly the pieces of the descriptor this
// engine reads: OWNER_SECURITY_INFORMATION (0x1) and
// DACL_SECURITY_INFORMATION.
const secInfoOwnerDacl = windows.OWNER_SECURITY_INFORMATION | windows.DACL_SECURITY_INFORMATION

// getSecurityDescriptor reads path's self-relative security descriptor
// with the classic two-pass GetFileSecurityW probe (size, then fill),
// then walks it with GetSecurityDescriptorOwner/Dacl and GetAce.
// includeInherited is accepted for symmetry with the resolve call
// chain; the actual filtering happens in SecurityResolver.resolve
// against each ACE's inherited flag, since GetFileSecurityW itself has
// no such filter.
func getSecurityDescriptor(path string, includeInherited bool) (*securityDescriptor, error) {
	_ = includeInherited

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding path %q", path)
	}

	var needed uint32
	r, _, callErr := mGetFileSecurityW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(secInfoOwnerDacl),
		0,
		0,
		uintptr(unsafe.Pointer(&needed)))
	if r == 0 && callErr != windows.ERROR_INSUFFICIENT_BUFFER {
		return nil, errors.Wrapf(callErr, "sizing security descriptor for %q", path)
	}
	if needed == 0 {
		return &securityDescriptor{}, nil
	}

	buf := make([]byte, needed)
	r, _, callErr = mGetFileSecurityW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(secInfoOwnerDacl),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(needed),
		uintptr(unsafe.Pointer(&needed)))
	if r == 0 {
		return nil, errors.Wrapf(callErr, "reading security descriptor for %q", path)
	}

	sd := (*windows.SECURITY_DESCRIPTOR)(unsafe.Pointer(&buf[0]))
	result := &securityDescriptor{}

	if owner, _, err := sd.Owner(); err == nil && owner != nil {
		result.ownerSID = owner.String()
	}

	dacl, _, err := sd.DACL()
	if err != nil || dacl == nil {
		return result, nil
	}

	for i := uint32(0); i < uint32(dacl.AceCount); i++ {
		var ace *windows.ACCESS_ALLOWED_ACE
		if err := windows.GetAce(dacl, i, &ace); err != nil {
			continue
		}

		sid := (*windows.SID)(unsafe.Pointer(&ace.SidStart))
		result.aces = append(result.aces, rawACE{
			sid:       sid.String(),
			mask:      uint32(ace.Mask),
			inherited: ace.Header.AceFlags&windows.INHERITED_ACE != 0,
		})
	}

	return result, nil
}

// lookupAccountSid implements the LookupAccountSid half of SID
// translation: parse the string SID back to a *windows.SID, then call
// LookupAccountSid with the standard size-probe-then-resolve pattern.
func lookupAccountSid(sidString string) (string, error) {
	sid, err := windows.StringToSid(sidString)
	if err != nil {
		return "", errors.Wrap(err, "parsing SID")
	}

	var nameLen, domainLen uint32
	var use uint32
	_ = windows.LookupAccountSid(nil, sid, nil, &nameLen, nil, &domainLen, &use)
	if nameLen == 0 {
		return "", errors.New("LookupAccountSid: unable to size buffers")
	}

	name := make([]uint16, nameLen)
	domain := make([]uint16, domainLen)
	var domainPtr *uint16
	if domainLen > 0 {
		domainPtr = &domain[0]
	}
	if err := windows.LookupAccountSid(nil, sid, &name[0], &nameLen, domainPtr, &domainLen, &use); err != nil {
		return "", errors.Wrap(err, "resolving SID")
	}

	account := windows.UTF16ToString(name)
	domainName := windows.UTF16ToString(domain)
	if domainName == "" {
		return account, nil
	}
	return domainName + "\\" + account, nil
}

// managedOwner is the managed-path owner lookup: the high-level
// GetNamedSecurityInfo API (which allocates and frees the descriptor
// itself) rather than the hand-bound GetFileSecurityW call, followed
// by os/user.LookupId keyed by the string SID. Going through a
// different advapi32 entry point than the native path keeps it usable
// as a fallback when that path fails.
func managedOwner(path string) (string, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return "", errors.Wrap(err, "reading owner for managed lookup")
	}

	owner, _, err := sd.Owner()
	if err != nil || owner == nil {
		return "", errors.New("no owner SID available")
	}

	sidString := owner.String()
	u, err := user.LookupId(sidString)
	if err != nil {
		return sidString, nil
	}
	return u.Username, nil
}
