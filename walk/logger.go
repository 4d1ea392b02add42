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
	"io"
	"log"
)

// LogLevel is the walk logger's severity scale. Per-entry walk
// errors are never logged above LogWarning - a bad subtree is data,
// not a process-fatal condition.
type LogLevel uint8

const (
	LogNone LogLevel = iota
	LogError
	LogWarning
	LogInfo
	LogDebug
)

type ILogger interface {
	ShouldLog(level LogLevel) bool
	Log(level LogLevel, msg string)
}

// NullLogger discards everything; it is the Options default so callers
// who don't care about observability pay nothing for it.
type NullLogger struct{}

func (NullLogger) ShouldLog(LogLevel) bool { return false }
func (NullLogger) Log(LogLevel, string)    {}

// StdLogger backs ILogger with the standard library's *log.Logger.
type StdLogger struct {
	minimum LogLevel
	logger  *log.Logger
}

func NewStdLogger(w io.Writer, minimum LogLevel) *StdLogger {
	return &StdLogger{
		minimum: minimum,
		logger:  log.New(w, "", log.LstdFlags|log.LUTC),
	}
}

func (l *StdLogger) ShouldLog(level LogLevel) bool {
	if level == LogNone {
		return false
	}
	return level <= l.minimum
}

func (l *StdLogger) Log(level LogLevel, msg string) {
	if !l.ShouldLog(level) {
		return
	}
	l.logger.Println(msg)
}
