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

import "context"

// SearchFor selects which kinds of filesystem entries are emitted.
type SearchFor uint8

const (
	SearchFiles SearchFor = iota
	SearchDirectories
	SearchBoth
)

func (s SearchFor) includesFiles() bool {
	return s == SearchFiles || s == SearchBoth
}

func (s SearchFor) includesDirectories() bool {
	return s == SearchDirectories || s == SearchBoth
}

// unboundedDepth is the sentinel max_depth value meaning "no cap".
const unboundedDepth = -1

// Options configures a single enumerate call. It is read-only for the
// duration of a walk; build one with NewOptions and the With* helpers.
type Options struct {
	SearchFor        SearchFor
	IncludeInherited bool
	ResolveOwner     bool
	UseNativeOwner   bool
	MaxDepth         int
	SearchPattern    string
	Parallelism      int

	Cancellation context.Context
	SidCache     *SidCache
	Logger       ILogger
}

// NewOptions returns the defaults: files only, inherited ACEs
// included, owner resolution on via the native path, no depth cap,
// "*" pattern.
func NewOptions(opts ...func(*Options)) Options {
	o := Options{
		SearchFor:        SearchFiles,
		IncludeInherited: true,
		ResolveOwner:     true,
		UseNativeOwner:   true,
		MaxDepth:         unboundedDepth,
		SearchPattern:    "*",
		Parallelism:      0, // 0 means "compute from CPU count" - see walkerCore.workerCount
		Cancellation:     context.Background(),
		SidCache:         NewSidCache(),
		Logger:           NullLogger{},
	}
	for _, f := range opts {
		f(&o)
	}
	return o
}

func WithSearchFor(s SearchFor) func(*Options) {
	return func(o *Options) { o.SearchFor = s }
}

func WithMaxDepth(depth int) func(*Options) {
	return func(o *Options) {
		if depth < 0 {
			o.MaxDepth = unboundedDepth
		} else {
			o.MaxDepth = depth
		}
	}
}

func WithSearchPattern(pattern string) func(*Options) {
	return func(o *Options) {
		if pattern != "" {
			o.SearchPattern = pattern
		}
	}
}

func WithResolveOwner(resolve bool) func(*Options) {
	return func(o *Options) { o.ResolveOwner = resolve }
}

func WithIncludeInherited(include bool) func(*Options) {
	return func(o *Options) { o.IncludeInherited = include }
}

func WithUseNativeOwner(native bool) func(*Options) {
	return func(o *Options) { o.UseNativeOwner = native }
}

func WithParallelism(n int) func(*Options) {
	return func(o *Options) { o.Parallelism = n }
}

func WithCancellation(ctx context.Context) func(*Options) {
	return func(o *Options) { o.Cancellation = ctx }
}

func WithSidCache(cache *SidCache) func(*Options) {
	return func(o *Options) { o.SidCache = cache }
}

func WithLogger(l ILogger) func(*Options) {
	return func(o *Options) { o.Logger = l }
}

// withDefaults fills the handful of reference-typed fields a caller
// may have left zero when building Options directly instead of through
// NewOptions.
func (o Options) withDefaults() Options {
	if o.Cancellation == nil {
		o.Cancellation = context.Background()
	}
	if o.SearchPattern == "" {
		o.SearchPattern = "*"
	}
	if o.Logger == nil {
		o.Logger = NullLogger{}
	}
	return o
}

func (o Options) hasDepthCap() bool {
	return o.MaxDepth != unboundedDepth
}

func (o Options) exceedsDepth(depth int) bool {
	return o.hasDepthCap() && depth > o.MaxDepth
}
