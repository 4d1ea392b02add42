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

// rawACE is the platform-neutral shape of one DACL entry, surfaced by
// the native half of this package before SID translation and rights
// naming happen up here. inherited mirrors the ACE_HEADER's
// INHERITED_ACE bit.
type rawACE struct {
	sid       string
	mask      uint32
	inherited bool
}

// securityDescriptor is what the native layer extracts from a single
// GetFileSecurity call: the owner SID (if present) and the raw DACL,
// unfiltered and untranslated.
type securityDescriptor struct {
	ownerSID string
	aces     []rawACE
}

// SecurityResolver produces, for a given path, an owner name and an
// identity->rights map, or a classified error. It owns nothing but a
// reference to the shared SidCache; resolvers are cheap to construct
// and safe to use from many workers concurrently.
type SecurityResolver struct {
	cache *SidCache
}

func NewSecurityResolver(cache *SidCache) *SecurityResolver {
	if cache == nil {
		cache = NewSidCache()
	}
	return &SecurityResolver{cache: cache}
}

// resolve extracts the owner and DACL for one path. isDirectory is
// accepted for symmetry with the walker's dispatch; the native call
// itself is attribute-agnostic.
func (r *SecurityResolver) resolve(path string, isDirectory bool, opts Options) (string, map[string]RightsSet, error) {
	sd, err := getSecurityDescriptor(path, opts.IncludeInherited)
	if err != nil {
		kind := classifyOSError(err)
		if kind != ErrIoError {
			return "", nil, classify(kind, err)
		}
		// An unclassifiable failure stands in for "the native security
		// call itself failed": try the managed path once before giving
		// up, so a flaky GetFileSecurity doesn't cost the entry its
		// owner. Specific kinds (Unauthorized, NotFound, PathTooLong)
		// emit directly with no retry.
		if opts.ResolveOwner {
			if owner, mErr := managedOwner(path); mErr == nil {
				return owner, map[string]RightsSet{}, nil
			}
		}
		return "", nil, classify(ErrSecurityError, err)
	}

	acl := make(map[string]RightsSet, len(sd.aces))
	for _, ace := range sd.aces {
		if ace.inherited && !opts.IncludeInherited {
			continue
		}
		identity := r.translateSid(ace.sid)
		acl[identity] = sddlRights(ace.mask)
	}

	if !opts.ResolveOwner {
		return "", acl, nil
	}

	owner, err := r.resolveOwner(path, sd, opts)
	if err != nil {
		return "", nil, classify(ErrSecurityError, err)
	}
	return owner, acl, nil
}

// resolveOwner picks between the native and managed owner paths. The
// native path reuses the owner SID already pulled out of sd by
// getSecurityDescriptor; the managed path is a second, independent OS
// query used either by configuration or as a one-shot fallback when
// the native owner SID could not be extracted.
func (r *SecurityResolver) resolveOwner(path string, sd *securityDescriptor, opts Options) (string, error) {
	if opts.UseNativeOwner {
		if sd.ownerSID != "" {
			return r.translateSid(sd.ownerSID), nil
		}
		// Native descriptor didn't carry an owner SID; fall through
		// to the managed path exactly once.
	}

	name, err := managedOwner(path)
	if err != nil {
		return "", err
	}
	return name, nil
}

// translateSid turns a string SID into an account name: cache lookup,
// then two-call LookupAccountSid, with failures memoized as the SID's
// own string form so repeated misses stay O(1).
func (r *SecurityResolver) translateSid(sid string) string {
	if name, ok := r.cache.lookup(sid); ok {
		return name
	}

	name, err := lookupAccountSid(sid)
	if err != nil {
		r.cache.storeFailure(sid)
		return sid
	}

	r.cache.store(sid, name)
	return name
}
