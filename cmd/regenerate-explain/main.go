// Command regenerate-explain rewrites the explain.txt golden file of each
// parser/testdata case from the current parser output.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

// testMetadata mirrors the metadata.json read by the parser tests.
type testMetadata struct {
	Dialect    string `json:"dialect,omitempty"`
	Todo       bool   `json:"todo,omitempty"`
	ParseError bool   `json:"parse_error,omitempty"`
}

var errSkipped = errors.New("skipped")

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	dryRun := flag.Bool("dry-run", false, "Print the trees without writing explain.txt")
	flag.Parse()

	testdataDir := "parser/testdata"

	if *testName != "" {
		if err := processTest(filepath.Join(testdataDir, *testName), *dryRun); err != nil && !errors.Is(err, errSkipped) {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *testName, err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var failures []string
	var processed, skipped int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		err := processTest(filepath.Join(testdataDir, entry.Name()), *dryRun)
		switch {
		case errors.Is(err, errSkipped):
			skipped++
		case err != nil:
			failures = append(failures, fmt.Sprintf("%s: %v", entry.Name(), err))
		default:
			processed++
		}
	}

	fmt.Printf("\nProcessed: %d, Skipped: %d, Errors: %d\n", processed, skipped, len(failures))
	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "\nErrors:\n")
		for _, e := range failures {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		os.Exit(1)
	}
}

func processTest(testDir string, dryRun bool) error {
	var metadata testMetadata
	if data, err := os.ReadFile(filepath.Join(testDir, "metadata.json")); err == nil {
		if err := json.Unmarshal(data, &metadata); err != nil {
			return fmt.Errorf("parsing metadata.json: %w", err)
		}
	}
	// Cases that expect a syntax error or are not supported yet keep
	// whatever golden they have.
	if metadata.Todo || metadata.ParseError {
		return errSkipped
	}

	d := token.Generic
	if metadata.Dialect != "" {
		var err error
		if d, err = token.ParseDialect(metadata.Dialect); err != nil {
			return err
		}
	}

	query, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
	if err != nil {
		return fmt.Errorf("reading query.sql: %w", err)
	}
	stmts, err := parser.ParseStatements(context.Background(), strings.NewReader(string(query)), d)
	if err != nil {
		return err
	}
	if len(stmts) == 0 {
		return errSkipped
	}

	var sb strings.Builder
	for _, stmt := range stmts {
		sb.WriteString(parser.Explain(stmt))
	}

	if dryRun {
		fmt.Printf("== %s (%s, %d statements)\n%s", filepath.Base(testDir), d, len(stmts), sb.String())
		return nil
	}
	outputPath := filepath.Join(testDir, "explain.txt")
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("%s -> %s\n", filepath.Base(testDir), filepath.Base(outputPath))
	return nil
}
