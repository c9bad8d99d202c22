package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"modelkit/internal/analyze"
	"modelkit/internal/gen"
)

func runAccessors(e *env, args []string) error {
	var (
		verbose    bool
		pattern    string
		typeList   string
		dir        string
		outDir     string
		filename   string
		tagName    string
		private    string
		noComments bool
	)

	fs := e.newFlagSet("accessors", &verbose)
	fs.StringVar(&pattern, "pkg", ".", "package pattern holding the record types")
	fs.StringVar(&typeList, "type", "", "comma separated record type names (required)")
	fs.StringVar(&dir, "dir", "", "directory the package pattern is resolved from")
	fs.StringVar(&outDir, "out", "", "output directory (default: the package directory)")
	fs.StringVar(&filename, "file", "", "output file name (default: <type>_accessors.go)")
	fs.StringVar(&tagName, "tag", "", `struct tag overriding keys (default "prop")`)
	fs.StringVar(&private, "private", "", `private key prefix (default "_")`)
	fs.BoolVar(&noComments, "no-comments", false, "omit doc comments on generated methods")

	if err := e.parse(fs, args, &verbose); err != nil {
		return err
	}

	names := splitList(typeList)
	if len(names) == 0 {
		return errors.New("-type is required")
	}

	analyzer := analyze.NewAnalyzer().WithDir(dir)

	graph, err := analyzer.LoadPackages(pattern)
	if err != nil {
		return err
	}

	pkg, err := singlePackage(graph, pattern)
	if err != nil {
		return err
	}

	records := make([]*analyze.TypeInfo, 0, len(names))

	for _, name := range names {
		info, err := analyzer.GetStruct(pkg.Path, name)
		if err != nil {
			return err
		}

		e.logger.Debug("record loaded",
			slog.String("type", info.ID.String()),
			slog.Int("fields", len(info.Fields)),
			slog.Any("methods", info.Methods),
		)

		records = append(records, info)
	}

	if outDir == "" {
		outDir = pkg.Dir
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		TagName:          tagName,
		PrivatePrefix:    private,
		OutputDir:        outDir,
		Filename:         filename,
		GenerateComments: !noComments,
	})

	file, err := g.GenerateAccessors(pkg, records)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles([]gen.GeneratedFile{*file}, outDir)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, file.Filename)
	if len(written) == 0 {
		e.logger.Info("accessors unchanged", slog.String("file", path))
		return nil
	}

	e.logger.Info("accessors written", slog.String("file", path))

	return nil
}

// singlePackage returns the only package a pattern loaded.
func singlePackage(graph *analyze.TypeGraph, pattern string) (*analyze.PackageInfo, error) {
	switch len(graph.Packages) {
	case 0:
		return nil, fmt.Errorf("pattern %q matched no packages", pattern)
	case 1:
		for _, pkg := range graph.Packages {
			return pkg, nil
		}
	}

	paths := make([]string, 0, len(graph.Packages))
	for path := range graph.Packages {
		paths = append(paths, path)
	}

	slices.Sort(paths)

	return nil, fmt.Errorf("pattern %q matched %d packages %v; accessors need exactly one", pattern, len(paths), paths)
}
