package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateSidPrefersCache(t *testing.T) {
	cache := NewSidCache()
	cache.store("S-1-5-18", `NT AUTHORITY\SYSTEM`)
	r := NewSecurityResolver(cache)

	assert.Equal(t, `NT AUTHORITY\SYSTEM`, r.translateSid("S-1-5-18"))
}

func TestTranslateSidMemoizedFailureReturnsSidItself(t *testing.T) {
	cache := NewSidCache()
	cache.storeFailure("S-1-5-21-9-9-9-9999")
	r := NewSecurityResolver(cache)

	assert.Equal(t, "S-1-5-21-9-9-9-9999", r.translateSid("S-1-5-21-9-9-9-9999"))
}

func TestNewSecurityResolverToleratesNilCache(t *testing.T) {
	r := NewSecurityResolver(nil)
	assert.NotNil(t, r.cache)
}

func TestErrorKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		ErrUnauthorized:  "Unauthorized",
		ErrPathTooLong:   "PathTooLong",
		ErrNotFound:      "NotFound",
		ErrIoError:       "IoError",
		ErrSecurityError: "SecurityError",
		ErrUnknown:       "Unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
