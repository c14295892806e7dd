// Package main provides the CLI entrypoint for reprdump.
//
// reprdump prints shape descriptors from the built-in catalog, from YAML
// shape files and from Go packages:
//   - in TypeScript-like notation (default)
//   - as raw Go values (-raw)
//   - as the list of paths a walk visits (-paths)
//   - with well-formedness diagnostics (-check)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-set/v3"

	"typerep/check"
	"typerep/internal/catalog"
	"typerep/options"
	"typerep/repr"
)

const usage = "usage: reprdump [options] [name ...]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	list   bool
	raw    bool
	paths  bool
	check  bool
	strict bool
	depth  int
	shapes string
	pkgs   string
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config

	fs := flag.NewFlagSet("reprdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.list, "list", false, "List entry names and origins only")
	fs.BoolVar(&cfg.raw, "raw", false, "Dump descriptors as raw Go values")
	fs.BoolVar(&cfg.paths, "paths", false, "Print every path a walk visits")
	fs.BoolVar(&cfg.check, "check", false, "Report well-formedness diagnostics")
	fs.BoolVar(&cfg.strict, "strict", false, "Enable every strict check")
	fs.IntVar(&cfg.depth, "depth", options.DefaultMaxResolveDepth, "Annot resolution bound")
	fs.StringVar(&cfg.shapes, "shapes", "", "Load shapes from a YAML file")
	fs.StringVar(&cfg.pkgs, "pkg", "", "Load named types from Go packages (comma-separated patterns)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	opts := options.Default()
	opts.MaxResolveDepth = cfg.depth
	if cfg.strict {
		opts.Strict = options.StrictAll
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	c, err := load(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	entries, err := selectEntries(c, fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	failed := false
	for _, e := range entries {
		switch {
		case cfg.list:
			fmt.Fprintf(stdout, "%s\t%s\n", e.Name, e.Origin)
		case cfg.raw:
			fmt.Fprintf(stdout, "=== %s ===\n", e.Name)
			dumper.Fdump(stdout, e.Desc)
		case cfg.paths:
			fmt.Fprintf(stdout, "=== %s ===\n", e.Name)
			if err := printPaths(stdout, e.Desc, opts); err != nil {
				fmt.Fprintln(stderr, "error:", err)
				return 1
			}
		default:
			fmt.Fprintf(stdout, "%s: %s\n", e.Name, repr.Format(e.Desc))
		}

		if cfg.check {
			ds, err := check.Check(e.Desc, opts)
			if err != nil {
				fmt.Fprintln(stderr, "error:", err)
				return 1
			}

			for _, d := range ds {
				fmt.Fprintf(stdout, "  %s\n", d)
			}

			failed = failed || ds.HasErrors()
		}
	}

	if failed {
		return 1
	}

	return 0
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

func load(cfg config) (*catalog.Catalog, error) {
	c, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}

	if cfg.shapes != "" {
		if err := c.LoadShapesFile(cfg.shapes); err != nil {
			return nil, err
		}
	}

	if cfg.pkgs != "" {
		if err := c.LoadPackages(strings.Split(cfg.pkgs, ",")...); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func selectEntries(c *catalog.Catalog, names []string) ([]catalog.Entry, error) {
	if len(names) == 0 {
		return c.Entries(), nil
	}

	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		e, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// printPaths prints one line per visited node. An Annot node met again is
// printed but not expanded a second time.
func printPaths(w io.Writer, d repr.Descriptor, opts options.Config) error {
	seen := set.New[repr.Descriptor](0)

	return repr.Walk(d, opts, func(path repr.Path, d repr.Descriptor, err error) error {
		if err != nil {
			fmt.Fprintf(w, "%s\t! %v\n", path, err)
			return nil
		}

		if d.Kind() != repr.KindAnnot {
			fmt.Fprintf(w, "%s\t%s\n", path, d.Kind())
			return nil
		}

		if reflect.TypeOf(d).Comparable() && !seen.Insert(d) {
			fmt.Fprintf(w, "%s\tannot (seen)\n", path)
			return repr.SkipChildren
		}

		fmt.Fprintf(w, "%s\tannot\n", path)

		return nil
	})
}
