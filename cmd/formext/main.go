package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/goliatone/go-formext/internal/cli"
	"github.com/goliatone/go-formext/internal/prompt"
	"github.com/goliatone/go-formext/pkg/schema"
)

func main() {
	manifests := flag.String("manifests", "modules", "directory holding module manifests")
	schemaPath := flag.String("schema", "", "base schema document (JSON or YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document used for the base schema when -schema is empty")
	operation := flag.String("operation", "", "operation ID within the OpenAPI document")
	target := flag.String("target", "", "extension target; prompts when empty")
	kindFlag := flag.String("kind", "fields", "extension kind: fields or columns")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("v", false, "log merge decisions to stderr")
	flag.Parse()

	ctx := context.Background()

	kind, err := cli.ParseKind(*kindFlag)
	if err != nil {
		log.Fatal(err)
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	p, err := cli.BuildPanel(ctx, os.DirFS(*manifests), logger)
	if err != nil {
		log.Fatalf("Failed to load modules: %v", err)
	}

	resolved, err := cli.ResolveTarget(ctx, *target, cli.Targets(p, kind), prompt.Survey{})
	if err != nil {
		log.Fatalf("Failed to resolve target: %v", err)
	}

	base, err := cli.LoadBase(ctx, cli.BaseSource{
		SchemaPath:  *schemaPath,
		OpenAPIPath: *openapiPath,
		Operation:   *operation,
	}, kind)
	if err != nil {
		log.Fatalf("Failed to load base schema: %v", err)
	}

	merged, err := cli.Merge(p, base, resolved, kind)
	if err != nil {
		log.Fatalf("Failed to merge %s for %q: %v", kind, resolved, err)
	}

	payload, err := schema.Encode(merged)
	if err != nil {
		log.Fatalf("Failed to encode schema: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Schema written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}
