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

	"github.com/google/uuid"
)

// walkSession correlates every log line produced by one Enumerate
// call with a single id. It carries no behavior beyond that - the
// walk's actual state lives in walkerCore.
type walkSession struct {
	id     uuid.UUID
	logger ILogger
}

func newWalkSession(logger ILogger) *walkSession {
	if logger == nil {
		logger = NullLogger{}
	}
	return &walkSession{id: uuid.New(), logger: logger}
}

func (s *walkSession) logStart(root string, opts Options) {
	if !s.logger.ShouldLog(LogInfo) {
		return
	}
	s.logger.Log(LogInfo, fmt.Sprintf(
		"[%s] starting walk at %q (search_for=%d max_depth=%d parallelism=%d)",
		s.id, root, opts.SearchFor, opts.MaxDepth, opts.Parallelism))
}

// logEntryError records a per-entry failure at LogWarning - a bad
// subtree is data, never a walk-fatal condition.
func (s *walkSession) logEntryError(path string, err error) {
	if !s.logger.ShouldLog(LogWarning) {
		return
	}
	s.logger.Log(LogWarning, fmt.Sprintf("[%s] %s: %v", s.id, path, err))
}

func (s *walkSession) logEnd(stats *WalkStats) {
	if !s.logger.ShouldLog(LogInfo) {
		return
	}
	s.logger.Log(LogInfo, fmt.Sprintf("[%s] walk finished (%s)", s.id, stats))
}
