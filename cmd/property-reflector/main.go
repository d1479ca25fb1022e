// Package main provides the CLI entrypoint for property-reflector.
//
// property-reflector inspects Go packages and prints the accessor table of
// each named type:
//   - Loads packages through go/types, without compiling them in
//   - Derives properties from get/set/is accessor methods and plain fields
//   - Resolves getter/setter conflicts and generic member types
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"property-reflector/accessor"
	"property-reflector/descriptor"
	"property-reflector/internal/analyze"
	"property-reflector/internal/common"
	"property-reflector/internal/config"
	"property-reflector/internal/diagnostic"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		typesFlag  = flag.String("types", "", "comma-separated type references to inspect")
		verbose    = flag.Bool("v", false, "enable verbose output")
	)

	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg, err := loadConfig(*configPath, *typesFlag, *verbose, flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, cfg); err != nil {
		log.Fatal(err)
	}
}

// loadConfig merges the optional config file with command-line overrides.
func loadConfig(path, typesFlag string, verbose bool, patterns []string) (*config.File, error) {
	cfg := &config.File{MaxSuggestions: 3}

	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if typesFlag != "" {
		cfg.Types = append(cfg.Types, strings.Split(typesFlag, ",")...)
	}

	if verbose {
		cfg.Verbose = true
	}

	cfg.Packages = append(cfg.Packages, patterns...)
	if common.IsEmpty(cfg.Packages) {
		return nil, fmt.Errorf("no packages to load; pass package patterns or a config file")
	}

	return cfg, nil
}

func run(log *logrus.Logger, cfg *config.File) error {
	host := analyze.NewHost()

	log.Debugf("loading packages: %v", cfg.Packages)

	if err := host.LoadPackages(cfg.Packages...); err != nil {
		return err
	}

	reg := accessor.NewRegistry(host, accessor.Config{
		CacheEnabled:   true,
		MaxSuggestions: cfg.MaxSuggestions,
	})

	var diags diagnostic.Diagnostics

	for _, target := range targets(host, cfg, &diags) {
		table, err := reg.Lookup(target.typ)
		if err != nil {
			diags.AddError("build-failed", err.Error(), target.name, "")

			continue
		}

		printTable(table, target.name)

		if cfg.Verbose {
			log.Debug(spew.Sdump(table.ReadableNames(), table.WritableNames()))
		}
	}

	for _, w := range diags.Warnings {
		log.Warn(w.String())
	}

	for _, e := range diags.Errors {
		log.Error(e.String())
	}

	if diags.HasErrors() {
		return diags.Error()
	}

	return nil
}

type target struct {
	name string
	typ  descriptor.TypeDescriptor
}

// targets resolves the configured type references, or falls back to every
// indexed type when none are configured.
func targets(host *analyze.Host, cfg *config.File, diags *diagnostic.Diagnostics) []target {
	if common.IsEmpty(cfg.Types) {
		ids := host.TypeIDs()

		all := make([]target, 0, len(ids))
		for _, id := range ids {
			if typ, ok := host.ResolveType(id.String()); ok {
				all = append(all, target{name: id.String(), typ: typ})
			}
		}

		return all
	}

	resolved := make([]target, 0, len(cfg.Types))

	for _, ref := range cfg.Types {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}

		typ, ok := host.ResolveType(ref)
		if !ok {
			diags.AddError("type-not-found", "no loaded package declares this type", ref, "")

			continue
		}

		resolved = append(resolved, target{name: ref, typ: typ})
	}

	return resolved
}

func printTable(table *accessor.Table, name string) {
	fmt.Printf("%s (%s)\n", name, table.TypeDescriptor().Kind())

	for _, prop := range table.ReadableNames() {
		mode := "r "
		if table.HasSetter(prop) {
			mode = "rw"
		}

		typeStr := ""
		if typ, err := table.GetterType(prop); err == nil {
			typeStr = " " + typ.String()
		}

		fmt.Printf("  %s %s%s\n", mode, prop, typeStr)
	}

	for _, prop := range table.WritableNames() {
		if table.HasGetter(prop) {
			continue
		}

		typeStr := ""
		if typ, err := table.SetterType(prop); err == nil {
			typeStr = " " + typ.String()
		}

		fmt.Printf("  w  %s%s\n", prop, typeStr)
	}

	if table.HasDefaultConstructor() {
		fmt.Println("  default constructor: yes")
	} else {
		fmt.Println("  default constructor: no")
	}

	fmt.Println()
}
