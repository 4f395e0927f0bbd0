package obsql_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/obsql"
)

func TestDialects(t *testing.T) {
	const sql = "SELECT * FROM t FOR UPDATE NO_WAIT"

	stmt, err := obsql.ParseOceanBase(sql)
	require.NoError(t, err)
	q, ok := stmt.(*obsql.Query)
	require.True(t, ok)
	require.NotNil(t, q.Lock)
	assert.True(t, q.Lock.NowaitOrWait)

	_, err = obsql.ParseMySQL(sql)
	var serr *obsql.SyntaxError
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.Equal(t, 1, serr.Line)
	assert.Equal(t, 28, serr.Column)
}

func TestFormatAndExplain(t *testing.T) {
	stmt, err := obsql.Parse("select id from users where id = 1", obsql.Generic)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `users` WHERE `id` = 1", obsql.Format(stmt))
	assert.Contains(t, obsql.Explain(stmt), "LongLiteral 1\n")
}
