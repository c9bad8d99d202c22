package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"modelkit/internal/analyze"
	"modelkit/internal/diagnostic"
	"modelkit/internal/gen"
	"modelkit/internal/mapping"
	"modelkit/internal/structinfo"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runStubs(e *env, args []string) error {
	var (
		verbose  bool
		file     string
		pkgName  string
		outDir   string
		filename string
		funcName string
		force    bool
	)

	fs := e.newFlagSet("stubs", &verbose)
	fs.StringVar(&file, "mapping", "", "mapping file (required)")
	fs.StringVar(&pkgName, "package", "", "package name of the generated file (required)")
	fs.StringVar(&outDir, "out", ".", "output directory")
	fs.StringVar(&filename, "file", "", `output file name (default "transforms_gen.go")`)
	fs.StringVar(&funcName, "func", "", `registration function name (default "registerTransforms")`)
	fs.BoolVar(&force, "force", false, "overwrite an existing file")

	if err := e.parse(fs, args, &verbose); err != nil {
		return err
	}

	if file == "" || pkgName == "" {
		return errors.New("-mapping and -package are required")
	}

	f, err := mapping.LoadFile(file)
	if err != nil {
		return err
	}

	out, err := gen.NewGenerator(gen.GeneratorConfig{OutputDir: outDir}).GenerateTransformStubs(f, gen.StubsConfig{
		PackageName:  pkgName,
		Source:       filepath.Base(file),
		RegisterFunc: funcName,
		Filename:     filename,
	})
	if err != nil {
		return err
	}

	target := filepath.Join(outDir, out.Filename)
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("%s already exists; use -force to overwrite", target)
	}

	if _, err := gen.WriteFiles([]gen.GeneratedFile{*out}, outDir); err != nil {
		return err
	}

	e.logger.Info("stubs written", slog.String("file", target))

	return nil
}

func runCheck(e *env, args []string) error {
	var (
		verbose  bool
		file     string
		patterns string
		dir      string
		tagName  string
		private  string
	)

	fs := e.newFlagSet("check", &verbose)
	fs.StringVar(&file, "mapping", "", "mapping file (required)")
	fs.StringVar(&patterns, "pkg", "", "comma separated package patterns declaring the record types")
	fs.StringVar(&dir, "dir", "", "directory package patterns are resolved from")
	fs.StringVar(&tagName, "tag", structinfo.DefaultTagName, "struct tag overriding keys")
	fs.StringVar(&private, "private", structinfo.DefaultPrivatePrefix, "private key prefix")

	if err := e.parse(fs, args, &verbose); err != nil {
		return err
	}

	if file == "" {
		return errors.New("-mapping is required")
	}

	f, err := mapping.LoadFile(file)
	if err != nil {
		return err
	}

	var graph *analyze.TypeGraph

	if pkgs := splitList(patterns); len(pkgs) > 0 {
		graph, err = analyze.NewAnalyzer().WithDir(dir).LoadPackages(pkgs...)
		if err != nil {
			return err
		}

		e.logger.Debug("packages loaded", slog.Int("types", len(graph.Types)))
	}

	diags := mapping.ValidateWith(f, graph, mapping.ValidateConfig{TagName: tagName, PrivatePrefix: private})
	printDiagnostics(e.stdout, diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%s: %d error(s)", file, len(diags.Errors))
	}

	e.logger.Info("mapping ok",
		slog.String("file", file),
		slog.Int("tables", len(f.Tables)),
		slog.Int("warnings", len(diags.Warnings)),
	)

	return nil
}

func runDump(e *env, args []string) error {
	var (
		verbose  bool
		file     string
		pattern  string
		typeName string
		dir      string
		tagName  string
		depth    int
	)

	fs := e.newFlagSet("dump", &verbose)
	fs.StringVar(&file, "mapping", "", "mapping file to dump")
	fs.StringVar(&pattern, "pkg", "", "package pattern declaring -type")
	fs.StringVar(&typeName, "type", "", "record type whose key paths are listed")
	fs.StringVar(&dir, "dir", "", "directory the package pattern is resolved from")
	fs.StringVar(&tagName, "tag", structinfo.DefaultTagName, "struct tag overriding keys")
	fs.IntVar(&depth, "depth", 2, "nesting depth of key paths")

	if err := e.parse(fs, args, &verbose); err != nil {
		return err
	}

	if file == "" && typeName == "" {
		return errors.New("one of -mapping or -type is required")
	}

	if file != "" {
		f, err := mapping.LoadFile(file)
		if err != nil {
			return err
		}

		dumpConfig.Fdump(e.stdout, f)
	}

	if typeName == "" {
		return nil
	}

	if pattern == "" {
		pattern = "."
	}

	graph, err := analyze.NewAnalyzer().WithDir(dir).LoadPackages(pattern)
	if err != nil {
		return err
	}

	info, err := mapping.ResolveTypeID(typeName, graph)
	if err != nil {
		return err
	}

	stringer := analyze.NewTypeStringer(tagName)
	for _, kp := range stringer.KeyPaths(info, depth) {
		fmt.Fprintf(e.stdout, "%s\t%s\n", kp.Path, stringer.TypeString(kp.Field.Type))
	}

	return nil
}

func runScaffold(e *env, args []string) error {
	var (
		verbose  bool
		patterns string
		dir      string
		primary  string
		other    string
		name     string
		out      string
		tagName  string
		private  string
	)

	fs := e.newFlagSet("scaffold", &verbose)
	fs.StringVar(&patterns, "pkg", ".", "comma separated package patterns declaring the record types")
	fs.StringVar(&dir, "dir", "", "directory package patterns are resolved from")
	fs.StringVar(&primary, "primary", "", "primary record type, e.g. accounts.Account (required)")
	fs.StringVar(&other, "other", "", "other record type, e.g. accounts.RemoteAccount (required)")
	fs.StringVar(&name, "name", "", "table name (default: the primary type name as a key)")
	fs.StringVar(&out, "out", "", "write the mapping file here instead of stdout")
	fs.StringVar(&tagName, "tag", structinfo.DefaultTagName, "struct tag overriding keys")
	fs.StringVar(&private, "private", structinfo.DefaultPrivatePrefix, "private key prefix")

	if err := e.parse(fs, args, &verbose); err != nil {
		return err
	}

	if primary == "" || other == "" {
		return errors.New("-primary and -other are required")
	}

	graph, err := analyze.NewAnalyzer().WithDir(dir).LoadPackages(splitList(patterns)...)
	if err != nil {
		return err
	}

	pt, err := mapping.ResolveTypeID(primary, graph)
	if err != nil {
		return fmt.Errorf("primary: %w", err)
	}

	ot, err := mapping.ResolveTypeID(other, graph)
	if err != nil {
		return fmt.Errorf("other: %w", err)
	}

	if name == "" {
		name = structinfo.KeyFor(pt.ID.Name)
	}

	table, diags := mapping.Scaffold(name, pt, ot, mapping.ValidateConfig{TagName: tagName, PrivatePrefix: private})
	printDiagnostics(e.stderr, diags)

	if err := diags.Error(); err != nil {
		return err
	}

	f := &mapping.File{Version: "1", Tables: []mapping.TableDef{*table}}

	for _, tr := range table.TransformNames() {
		if !mapping.IsBuiltinTransform(tr) {
			f.Transforms = append(f.Transforms, mapping.TransformDef{Name: tr, Description: "placeholder drafted by scaffold."})
		}
	}

	if out != "" {
		if err := mapping.WriteFile(f, out); err != nil {
			return err
		}

		e.logger.Info("mapping written", slog.String("file", out), slog.Int("fields", len(table.Fields)))

		return nil
	}

	data, err := mapping.Marshal(f)
	if err != nil {
		return err
	}

	_, err = e.stdout.Write(data)

	return err
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
