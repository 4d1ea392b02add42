package sddl

import (
	"strconv"
	"strings"
)

// ACERights is a bitmask of the rights granted by an ACE's access mask.
// Check https://docs.microsoft.com/en-us/windows/win32/secauthz/access-mask-format for a description of the mask layout.
// Note that these rights can be combined. Simply use a binary OR on the existing flags.
type ACERights uint32
type eACERights uint32

const EACERights eACERights = 0

func (r ACERights) String() string {
	// Just return the hex; it's valid.
	// This works past the issue of masks that don't decompose into the named file rights.
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(r), 16))
}

func (eACERights) NO_RIGHTS() ACERights {
	return 0
}

// The following magic numbers are modeled after Windows' implementation, as hexadecimal literal access masks are supported.

// ========== GENERIC ACCESS RIGHTS ==========

// Generic access rights are defined here:
// https://docs.microsoft.com/en-us/windows/win32/secauthz/access-mask-format
// Bits 31-28, GR, GW, GE, GA

func (eACERights) SDDL_GENERIC_READ() ACERights {
	return 1 << 31
}

func (eACERights) SDDL_GENERIC_WRITE() ACERights {
	return 1 << 30
}

func (eACERights) SDDL_GENERIC_EXECUTE() ACERights {
	return 1 << 29
}

func (eACERights) SDDL_GENERIC_ALL() ACERights {
	return 1 << 28
}

// =========== FILE ACCESS RIGHTS ===========

// Unlike the prior section, raw values will be used here as these aren't push backs.
// I'm _concerned_ for overlaps.

// FILE_ALL_ACCESS
func (eACERights) SDDL_FILE_ALL() ACERights {
	return 2032127
}

// FILE_GENERIC_READ
func (eACERights) SDDL_FILE_READ() ACERights {
	return 1179785
}

// FILE_GENERIC_WRITE
func (eACERights) SDDL_FILE_WRITE() ACERights {
	return 1179926
}

// FILE_GENERIC_EXECUTE
func (eACERights) SDDL_FILE_EXECUTE() ACERights {
	return 1179808
}
