package parser_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

func TestWithTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	_, err := parser.ParseString(context.Background(), "SELECT a FROM t", token.OceanBase,
		parser.WithLogger(logger), parser.WithTrace(true))
	require.NoError(t, err)

	rules := logs.FilterMessage("enter rule").All()
	require.NotEmpty(t, rules)
	first := rules[0].ContextMap()
	assert.Equal(t, "statement", first["rule"])
	assert.Equal(t, "SELECT", first["token"])
	assert.Equal(t, int64(1), first["line"])
	assert.Equal(t, "oceanbase", first["dialect"])

	assert.Equal(t, 1, logs.FilterMessage("parsed statement").Len())
}

func TestTraceOffByDefault(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := parser.ParseString(context.Background(), "SELECT 1", token.Generic, parser.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("enter rule").Len())
}

func TestErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := parser.ParseString(context.Background(), "SELECT 'abc", token.Generic, parser.WithLogger(zap.New(core)))
	require.Error(t, err)

	lexical := logs.FilterMessage("lexical error").All()
	require.Len(t, lexical, 1)
	assert.Equal(t, zapcore.WarnLevel, lexical[0].Level)
	assert.Equal(t, "unmatched quote", lexical[0].ContextMap()["reason"])

	_, err = parser.ParseString(context.Background(), "SELECT FROM FROM t", token.Generic, parser.WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("syntax error").Len())
}

func TestWithLoggerNil(t *testing.T) {
	_, err := parser.ParseString(context.Background(), "SELECT 1", token.Generic, parser.WithLogger(nil))
	assert.NoError(t, err)
}

// Parsers share only the read-only keyword tables, so independent parses
// may run in parallel.
func TestConcurrentParsing(t *testing.T) {
	queries := []struct {
		sql     string
		dialect token.Dialect
		ok      bool
	}{
		{"SELECT * FROM t FOR UPDATE NO_WAIT", token.OceanBase, true},
		{"SELECT * FROM t FOR UPDATE NO_WAIT", token.Generic, false},
		{"SELECT rank FROM t", token.OceanBase, true},
		{"SELECT rank FROM t", token.Generic, false},
		{"INSERT INTO t VALUES (1)", token.Generic, true},
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for i := 0; i < 20; i++ {
		q := queries[i%len(queries)]
		g.Go(func() error {
			_, err := parser.ParseString(ctx, q.sql, q.dialect)
			if (err == nil) != q.ok {
				return fmt.Errorf("%s %q: unexpected result %v", q.dialect, q.sql, err)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
