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
	"context"
	"strings"

	"github.com/pkg/errors"
)

// outputBufferSize keeps producers from stalling on a briefly-lagging
// consumer. Once the buffer is full, workers block on send until the
// consumer catches up or the walk is cancelled, so memory stays bounded.
const outputBufferSize = 1024

// Enumerate walks the tree rooted at root and streams one
// FileSystemEntry per emitted path. The only synchronous failure is
// an empty or whitespace root; everything after that is reported
// per entry. The worker pool starts in the background and the
// returned EntryStream is live immediately.
func Enumerate(root string, opts Options) (*EntryStream, error) {
	if err := validateRoot(root); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	session := newWalkSession(opts.Logger)
	session.logStart(root, opts)

	ctx, cancel := context.WithCancel(opts.Cancellation)
	opts.Cancellation = ctx

	resolver := NewSecurityResolver(opts.SidCache)
	stats := &WalkStats{}
	output := make(chan FileSystemEntry, outputBufferSize)
	done := make(chan struct{})

	onMatch := func(path string, attrs uint32) {
		entry := newEntry(path, attrs)
		owner, acl, err := resolver.resolve(path, attrs&fileAttributeDirectory != 0, opts)
		if err != nil {
			entry = entry.withError(errorKindOf(err), err)
			stats.addErrorObserved()
			session.logEntryError(path, err)
		} else {
			entry = entry.withSecurity(owner, acl)
		}

		select {
		case output <- entry:
			stats.addEntryEmitted()
		case <-ctx.Done():
		}
	}

	core := newWalkerCore(opts, stats, onMatch)
	go func() {
		core.run(root)
		close(output)
		close(done)
		session.logEnd(stats)
	}()

	return newEntryStream(output, cancel, done, stats), nil
}

// EnumeratePaths is the lightweight variant of Enumerate: identical
// traversal policy, but no SecurityResolver is constructed at all -
// each match is forwarded as a bare path.
func EnumeratePaths(root string, opts Options) (*PathStream, error) {
	if err := validateRoot(root); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	session := newWalkSession(opts.Logger)
	session.logStart(root, opts)

	ctx, cancel := context.WithCancel(opts.Cancellation)
	opts.Cancellation = ctx

	stats := &WalkStats{}
	output := make(chan string, outputBufferSize)
	done := make(chan struct{})

	onMatch := func(path string, _ uint32) {
		select {
		case output <- path:
			stats.addEntryEmitted()
		case <-ctx.Done():
		}
	}

	core := newWalkerCore(opts, stats, onMatch)
	go func() {
		core.run(root)
		close(output)
		close(done)
		session.logEnd(stats)
	}()

	return newPathStream(output, cancel, done), nil
}

func validateRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return errors.New("walk: root path must not be empty")
	}
	return nil
}

func errorKindOf(err error) ErrorKind {
	var ce *classifiedError
	if errors.As(err, &ce) {
		return ce.kind
	}
	return ErrUnknown
}
