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
	"path/filepath"
	"runtime"
	"sync"
)

// walkTask is one unit of pending work: a directory path plus the
// depth at which it was discovered. It lives only inside walkerCore's
// queue.
type walkTask struct {
	path  string
	depth int
}

// maxQueueDirsForBreadthFirst is the threshold at which the queue
// switches from FIFO (breadth-first, good for spreading small-file
// workloads early) to LIFO (depth-first, bounds queue memory growth
// on very wide trees). The figure is somewhat arbitrary. We just want
// it big, but not huge.
const maxQueueDirsForBreadthFirst = 100 * 1000

// walkerCore is the parallel traversal engine. Security resolution
// and entry shaping are factored out into the onMatch callback
// supplied by the caller: Enumerate wires one that resolves ACLs and
// owners, EnumeratePaths wires a bare path-only forward.
type walkerCore struct {
	opts    Options
	dedup   *dedupSet
	stats   *WalkStats
	onMatch func(path string, attrs uint32)

	cond       *sync.Cond
	unstarted  []walkTask
	inProgress int
}

func newWalkerCore(opts Options, stats *WalkStats, onMatch func(path string, attrs uint32)) *walkerCore {
	return &walkerCore{
		opts:    opts,
		dedup:   newDedupSet(),
		stats:   stats,
		onMatch: onMatch,
		cond:    sync.NewCond(&sync.Mutex{}),
	}
}

// workerCount defaults to ceil(1.5 * logical CPU count) when
// Options.Parallelism is left at its zero value, otherwise honors the
// caller's explicit figure.
func (w *walkerCore) workerCount() int {
	if w.opts.Parallelism > 0 {
		return w.opts.Parallelism
	}
	n := (runtime.NumCPU()*3 + 1) / 2 // ceil(1.5 * NumCPU)
	if n < 1 {
		n = 1
	}
	return n
}

// run seeds the queue with root and blocks until every worker has
// exited - either because the tree is exhausted or because
// cancellation was observed. Callers run this on a goroutine.
func (w *walkerCore) run(root string) {
	if w.dedup.tryAdd(root) {
		w.unstarted = append(w.unstarted, walkTask{path: root, depth: 0})
	}

	var wg sync.WaitGroup
	n := w.workerCount()
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			w.workerLoop()
		}()
	}
	wg.Wait()
}

func (w *walkerCore) workerLoop() {
	for {
		task, ok := w.popTask()
		if !ok {
			return
		}
		w.visit(task)
	}
}

// popTask is the quiescence check. A worker must wait while the queue
// is empty but some other worker is still in progress (it might push
// more work), and may only conclude the walk is over when queue-empty
// and in-progress==0 are observed together under cond.L. Checking the
// queue alone would truncate the walk while another worker is
// mid-enumeration and about to push subdirectories.
func (w *walkerCore) popTask() (walkTask, bool) {
	w.cond.L.Lock()
	defer w.cond.L.Unlock()

	for len(w.unstarted) == 0 && w.inProgress > 0 && w.opts.Cancellation.Err() == nil {
		w.cond.Wait()
	}

	if w.opts.Cancellation.Err() != nil {
		return walkTask{}, false
	}
	if len(w.unstarted) == 0 {
		return walkTask{}, false
	}

	var task walkTask
	if len(w.unstarted) < maxQueueDirsForBreadthFirst {
		task = w.unstarted[0]
		w.unstarted = w.unstarted[1:]
	} else {
		last := len(w.unstarted) - 1
		task = w.unstarted[last]
		w.unstarted = w.unstarted[:last]
	}
	w.inProgress++
	w.cond.Broadcast()
	return task, true
}

// visit processes one directory: depth re-check, iteration, dedup'd
// subdirectory enqueue under the depth cap, and onMatch dispatch for
// the entry kinds the SearchFor policy emits.
func (w *walkerCore) visit(task walkTask) {
	var discovered []walkTask
	defer func() {
		w.cond.L.Lock()
		w.unstarted = append(w.unstarted, discovered...)
		w.inProgress--
		w.cond.Broadcast()
		w.cond.L.Unlock()
	}()

	if w.opts.Cancellation.Err() != nil {
		return
	}
	if w.opts.exceedsDepth(task.depth) {
		return
	}

	iter := newNativeDirIter(task.path, w.opts.SearchPattern)
	defer iter.close()
	w.stats.addDirectoryVisited()

	for {
		if w.opts.Cancellation.Err() != nil {
			return
		}

		child, ok := iter.next()
		if !ok {
			return
		}

		full := filepath.Join(task.path, child.name)
		isDir := child.attributes&fileAttributeDirectory != 0

		if isDir {
			if !w.opts.exceedsDepth(task.depth+1) && w.dedup.tryAdd(full) {
				discovered = append(discovered, walkTask{path: full, depth: task.depth + 1})
			}
			if w.opts.SearchFor.includesDirectories() {
				w.onMatch(full, child.attributes)
			}
		} else if w.opts.SearchFor.includesFiles() {
			w.onMatch(full, child.attributes)
		}
	}
}
