// Command obparse parses MySQL or OceanBase SQL and prints the tree dump,
// the JSON tree or the formatted SQL of each statement.
//
//	obparse -dialect oceanbase "SELECT * FROM t FOR UPDATE NO_WAIT"
//	echo "SELECT 1" | obparse -mode json
//	obparse -batch a.sql b.sql
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/internal/logging"
	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
)

func main() {
	dialectName := flag.String("dialect", "mysql", "SQL dialect: mysql or oceanbase")
	mode := flag.String("mode", "explain", "Output mode: explain, json or format")
	logConfig := flag.String("log-config", "", "Path to a YAML logging config")
	batch := flag.Bool("batch", false, "Treat arguments as SQL files and parse them concurrently")
	jobs := flag.Int("jobs", 4, "Number of files parsed at once in batch mode")
	trace := flag.Bool("trace", false, "Log every grammar rule entered at debug level")
	flag.Parse()

	d, err := token.ParseDialect(*dialectName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	render, ok := renderers[*mode]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	logger, err := newLogger(*logConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	opts := []parser.Option{parser.WithLogger(logger), parser.WithTrace(*trace)}
	ctx := context.Background()

	if *batch {
		if err := runBatch(ctx, flag.Args(), d, *jobs, render, opts); err != nil {
			os.Exit(1)
		}
		return
	}

	src, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	out, err := parseAndRender(ctx, src, d, render, opts)
	if err != nil {
		printError(os.Stderr, "", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := logging.Default()
	if path != "" {
		var err error
		if cfg, err = logging.Load(path); err != nil {
			return nil, err
		}
	}
	return logging.New(cfg)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

type renderer func(ast.Statement) (string, error)

var renderers = map[string]renderer{
	"explain": func(stmt ast.Statement) (string, error) {
		return parser.Explain(stmt), nil
	},
	"format": func(stmt ast.Statement) (string, error) {
		return parser.Format(stmt) + ";\n", nil
	},
	"json": func(stmt ast.Statement) (string, error) {
		data, err := json.MarshalIndent(stmt, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	},
}

func parseAndRender(ctx context.Context, src string, d token.Dialect, render renderer, opts []parser.Option) (string, error) {
	stmts, err := parser.ParseStatements(ctx, strings.NewReader(src), d, opts...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, stmt := range stmts {
		out, err := render(stmt)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// runBatch parses every file on its own goroutine, bounded by jobs, and
// prints the results in argument order.
func runBatch(ctx context.Context, files []string, d token.Dialect, jobs int, render renderer, opts []parser.Option) error {
	outputs := make([]string, len(files))
	errs := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			// Syntax errors belong to one file and do not cancel the rest.
			outputs[i], errs[i] = parseAndRender(ctx, string(data), d, render, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	var failed error
	for i, name := range files {
		fmt.Println(headerStyle.Render("-- " + name))
		if errs[i] != nil {
			printError(os.Stdout, name, errs[i])
			failed = errs[i]
			continue
		}
		fmt.Print(outputs[i])
	}
	return failed
}

// printError writes err with the offending line and a highlighted caret
// when it is a syntax error.
func printError(w io.Writer, name string, err error) {
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
		return
	}
	prefix := ""
	if name != "" {
		prefix = name + ":"
	}
	msg := fmt.Sprintf("%s%d:%d: %s", prefix, se.Line, se.Column, se.Msg)
	if se.Token != "" {
		msg += fmt.Sprintf(" (near %q)", se.Token)
	}
	fmt.Fprintln(w, errorStyle.Render(msg))
	if se.Source != "" {
		fmt.Fprintln(w, sourceStyle.Render(se.Source))
		fmt.Fprintln(w, caretStyle.Render(se.Caret))
	}
}
