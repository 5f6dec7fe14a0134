// Command propmap-lint checks a mapping profile against Go source.
//
// It loads the given packages (default "./..."), verifies that every mapping
// of the profile names two exported structs and that every ignore entry names
// a writable target property, then prints the plan each mapping would follow
// at runtime.
//
// Usage:
//
//	propmap-lint -profile propmap.yaml [-v] [-dump] [packages...]
//
// The exit status is 1 when the profile has errors and 2 on usage or load
// failures.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"property-mapper/internal/analyze"
	"property-mapper/internal/diagnostic"
	"property-mapper/mapper"
	"property-mapper/profile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("propmap-lint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	profilePath := fs.String("profile", "", "mapping profile (.yaml, .yml, .toml or .json)")
	verbose := fs.Bool("v", false, "also report matched and ignored fields")
	dump := fs.Bool("dump", false, "dump the static plans")
	dir := fs.String("C", "", "resolve packages relative to this directory")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *profilePath == "" {
		fmt.Fprintln(stderr, "propmap-lint: -profile is required")
		fs.Usage()

		return 2
	}

	f, err := profile.LoadFile(*profilePath)
	if err != nil {
		fmt.Fprintf(stderr, "propmap-lint: %v\n", err)
		return 2
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	loader := analyze.NewLoader()
	loader.Dir = *dir

	graph, err := loader.Load(patterns...)
	if err != nil {
		fmt.Fprintf(stderr, "propmap-lint: %v\n", err)
		return 2
	}

	report := analyze.Lint(graph, f)

	for _, plan := range report.Plans {
		fmt.Fprint(stdout, plan)
	}

	if *dump {
		spew.Fdump(stdout, report.Plans)
	}

	minimum := diagnostic.SeverityWarning
	if *verbose {
		minimum = diagnostic.SeverityInfo
		explain(report)
	}

	if err := report.Diagnostics.WriteTo(stdout, minimum); err != nil {
		fmt.Fprintf(stderr, "propmap-lint: %v\n", err)
		return 2
	}

	if report.Diagnostics.HasErrors() {
		fmt.Fprintf(stderr, "propmap-lint: %s: %d error(s)\n", *profilePath, len(report.Diagnostics.Errors))
		return 1
	}

	return 0
}

// explain adds one info per planned field that is not unmapped.
func explain(report *analyze.Report) {
	for _, plan := range report.Plans {
		tp := plan.Mapping.TypePair()

		for _, e := range plan.Entries {
			if e.Source != "" {
				report.Diagnostics.AddInfo("planned_field",
					fmt.Sprintf("%s from %s", e.Resolution, e.Source), tp, e.Field)
			} else if e.Resolution == mapper.Ignored {
				report.Diagnostics.AddInfo("ignored_field", "excluded by profile", tp, e.Field)
			}
		}
	}
}
