// Package main provides the CLI entrypoint for modelkit.
//
// modelkit works on the compile-time side of records and mapping tables:
//   - accessors generates typed Get<Field>/Set<Field> methods for record structs
//   - stubs generates transformation skeletons for a YAML mapping file
//   - check validates a mapping file, optionally against loaded Go types
//   - dump prints a parsed mapping file or the key paths of a record type
//   - scaffold drafts a mapping table for two record types
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

// env carries the process streams so commands can be driven from tests.
type env struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

var commands = []command{
	{"accessors", "generate Get/Set methods for record structs", runAccessors},
	{"stubs", "generate transformation stubs for a mapping file", runStubs},
	{"check", "validate a mapping file", runCheck},
	{"dump", "print a parsed mapping file or record key paths", runDump},
	{"scaffold", "draft a mapping table for two record types", runScaffold},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "-help" {
		usage(stderr)
		return 0
	}

	for _, cmd := range commands {
		if cmd.name != args[0] {
			continue
		}

		e := &env{stdout: stdout, stderr: stderr, logger: newLogger(stderr, false)}

		err := cmd.run(e, args[1:])
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		if err != nil {
			fmt.Fprintf(stderr, "modelkit %s: %v\n", cmd.name, err)
			return 1
		}

		return 0
	}

	fmt.Fprintf(stderr, "modelkit: unknown command %q\n", args[0])
	usage(stderr)

	return 1
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: modelkit <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, `run "modelkit <command> -h" for the flags of a command`)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newFlagSet returns a flag set for a command with the shared -v flag bound.
func (e *env) newFlagSet(name string, verbose *bool) *flag.FlagSet {
	fs := flag.NewFlagSet("modelkit "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.BoolVar(verbose, "v", false, "log debug records")

	return fs
}

// parse parses args and switches to debug logging when -v is set.
func (e *env) parse(fs *flag.FlagSet, args []string, verbose *bool) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *verbose {
		e.logger = newLogger(e.stderr, true)
	}

	return nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
