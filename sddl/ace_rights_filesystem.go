package sddl

// coversAll reports whether every bit of want is set in r - full
// bitmask containment, not a bit-overlap test. The FILE_* constants
// below are composite masks (several
// bits each), so overlap alone would make almost any nonzero mask
// spuriously "contain" FILE_ALL.
func coversAll(r, want ACERights) bool {
	return r&want == want
}

// NamedFileSystemRights renders r as the small named-rights vocabulary a
// .NET FileSystemRights caller would recognize, falling back to the raw
// hex form (via String) for masks that don't cleanly cover one of these
// buckets. Order matters: broader rights are tested first so a mask that
// happens to satisfy both FullControl and Read is reported as the former.
func (r ACERights) NamedFileSystemRights() []string {
	switch {
	case coversAll(r, EACERights.SDDL_GENERIC_ALL()) || coversAll(r, EACERights.SDDL_FILE_ALL()):
		return []string{"FullControl"}
	case coversAll(r, EACERights.SDDL_GENERIC_WRITE()) && coversAll(r, EACERights.SDDL_GENERIC_READ()):
		return []string{"Modify"}
	case coversAll(r, EACERights.SDDL_FILE_WRITE()) && coversAll(r, EACERights.SDDL_FILE_READ()):
		return []string{"Modify"}
	}

	var names []string
	if coversAll(r, EACERights.SDDL_GENERIC_READ()) {
		names = append(names, "GenericRead")
	}
	if coversAll(r, EACERights.SDDL_GENERIC_WRITE()) {
		names = append(names, "GenericWrite")
	}
	if coversAll(r, EACERights.SDDL_GENERIC_EXECUTE()) {
		names = append(names, "GenericExecute")
	}
	if coversAll(r, EACERights.SDDL_FILE_EXECUTE()) {
		names = append(names, "ReadAndExecute")
	}
	if coversAll(r, EACERights.SDDL_FILE_READ()) {
		names = append(names, "Read")
	}
	if coversAll(r, EACERights.SDDL_FILE_WRITE()) {
		names = append(names, "Write")
	}

	if len(names) == 0 {
		names = append(names, r.String())
	}
	return names
}
