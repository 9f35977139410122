// Package main is the entry point for javafmt. It prints the formatter
// options that a run would use.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/donaldgifford/javafmt/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	aosp := flag.Bool("aosp", false, "use AOSP style instead of Google style (4-space indentation)")
	skipJavadoc := flag.Bool("skip-javadoc-formatting", false, "do not reformat Javadoc comments")
	configPath := flag.String("config", "", "path to config file")
	output := flag.String("o", "yaml", "output encoding: yaml or toml")
	verbose := flag.Bool("v", false, "log how the options were resolved")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("javafmt %s (%s) %s\n", version, commit, date)
		return
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "javafmt: unexpected arguments: %v\n", flag.Args())
		os.Exit(runner.ExitError)
	}

	opts := &runner.Options{
		ConfigPath:            *configPath,
		AOSP:                  *aosp,
		SkipJavadocFormatting: *skipJavadoc,
		Output:                *output,
		Verbose:               *verbose,
	}

	os.Exit(runner.Run(opts))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: javafmt [flags]

Print the effective Java formatter options. Options come from the defaults,
then javafmt.yml (or .toml) in the current directory, then flags.

Flags:
`)
	flag.PrintDefaults()
}
