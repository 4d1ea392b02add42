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

// walkacl is a small demonstration CLI over the walk package: it
// enumerates a directory tree and prints one rendered line per entry.
// It is not a replacement for a full copy/sync tool - just enough
// surface to drive enumerate() from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bali3355/Fast-Folder-Exploring-with-Security/walk"
)

// searchForValue binds the files/dirs/both vocabulary to a flag, so
// an invalid value is rejected at parse time rather than in cook().
type searchForValue walk.SearchFor

var _ pflag.Value = (*searchForValue)(nil)

func (v *searchForValue) String() string {
	switch walk.SearchFor(*v) {
	case walk.SearchDirectories:
		return "dirs"
	case walk.SearchBoth:
		return "both"
	default:
		return "files"
	}
}

func (v *searchForValue) Set(s string) error {
	switch s {
	case "files":
		*v = searchForValue(walk.SearchFiles)
	case "dirs", "directories":
		*v = searchForValue(walk.SearchDirectories)
	case "both":
		*v = searchForValue(walk.SearchBoth)
	default:
		return fmt.Errorf("invalid value %q (want files, dirs, or both)", s)
	}
	return nil
}

func (v *searchForValue) Type() string { return "kind" }

type rawWalkArgs struct {
	root             string
	searchFor        searchForValue
	maxDepth         int
	pattern          string
	includeInherited bool
	resolveOwner     bool
	useNativeOwner   bool
	verboseACL       bool
	quiet            bool
}

type cookedWalkArgs struct {
	root       string
	options    walk.Options
	verboseACL bool
	quiet      bool
}

func (raw rawWalkArgs) cook() (cookedWalkArgs, error) {
	if raw.root == "" {
		return cookedWalkArgs{}, fmt.Errorf("a root path is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		cancel()
	}()

	opts := walk.NewOptions(
		walk.WithSearchFor(walk.SearchFor(raw.searchFor)),
		walk.WithMaxDepth(raw.maxDepth),
		walk.WithSearchPattern(raw.pattern),
		walk.WithIncludeInherited(raw.includeInherited),
		walk.WithResolveOwner(raw.resolveOwner),
		walk.WithUseNativeOwner(raw.useNativeOwner),
		walk.WithCancellation(ctx),
	)

	return cookedWalkArgs{root: raw.root, options: opts, verboseACL: raw.verboseACL, quiet: raw.quiet}, nil
}

// process runs the walk to completion, printing progress to stderr
// and each entry's canonical rendering to stdout.
func (cooked cookedWalkArgs) process() error {
	stream, err := walk.Enumerate(cooked.root, cooked.options)
	if err != nil {
		return fmt.Errorf("starting walk: %w", err)
	}
	defer stream.Dispose()

	var count uint64
	start := time.Now()
	for {
		entry, ok := stream.Next()
		if !ok {
			break
		}

		count++
		fmt.Println(entry.Render())
		if cooked.verboseACL {
			if acl := entry.RenderACL(); acl != "" {
				fmt.Println("  " + acl)
			}
		}

		if !cooked.quiet && count%1000 == 0 {
			fmt.Fprintf(os.Stderr, "%s entries in %s\n",
				humanize.Comma(int64(count)), time.Since(start).Round(time.Second))
		}
	}

	if !cooked.quiet {
		stats := stream.Stats()
		fmt.Fprintf(os.Stderr, "done: %s entries (%s) in %s\n",
			humanize.Comma(stats.EntriesEmitted()), stats, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func main() {
	raw := rawWalkArgs{}

	rootCmd := &cobra.Command{
		Use:   "walkacl [path]",
		Short: "enumerate a directory tree and its discretionary access control lists",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("walkacl requires exactly one path argument")
			}
			raw.root = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cooked, err := raw.cook()
			if err != nil {
				return fmt.Errorf("failed to parse arguments: %w", err)
			}
			if err := cooked.process(); err != nil {
				return fmt.Errorf("walk failed: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Var(&raw.searchFor, "search-for", "which entries to emit: files, dirs, or both")
	rootCmd.PersistentFlags().IntVar(&raw.maxDepth, "max-depth", -1, "maximum recursion depth; -1 means unbounded, 0 means root only")
	rootCmd.PersistentFlags().StringVar(&raw.pattern, "pattern", "*", "wildcard passed to the native find call")
	rootCmd.PersistentFlags().BoolVar(&raw.includeInherited, "include-inherited", true, "include inherited ACEs in the emitted ACL map")
	rootCmd.PersistentFlags().BoolVar(&raw.resolveOwner, "resolve-owner", true, "resolve the owner principal for each entry")
	rootCmd.PersistentFlags().BoolVar(&raw.useNativeOwner, "use-native-owner", true, "prefer the native GetFileSecurity path for owner resolution")
	rootCmd.PersistentFlags().BoolVar(&raw.verboseACL, "verbose-acl", false, "also print the full identity=rights listing for each entry")
	rootCmd.PersistentFlags().BoolVar(&raw.quiet, "quiet", false, "suppress progress output on stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
