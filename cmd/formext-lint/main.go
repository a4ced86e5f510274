package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formext/internal/cli"
)

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-manifests DIR] [-schemas DIR]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nReport extension anchors that do not resolve against the base schemas.\nSchemas are named after their target, e.g. products.json.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	manifests := flag.String("manifests", "modules", "directory holding module manifests")
	schemas := flag.String("schemas", "schemas", "directory holding one base schema per target")
	flag.Parse()

	ctx := context.Background()

	bases, err := cli.LoadBases(os.DirFS(*schemas))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	violations, err := cli.Lint(ctx, os.DirFS(*manifests), bases, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", v.Kind, v.Target, v.Message)
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
}
