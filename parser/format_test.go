package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/obsql/ast"
	"github.com/sqlc-dev/obsql/internal/normalize"
	"github.com/sqlc-dev/obsql/parser"
	"github.com/sqlc-dev/obsql/token"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{
			"select a as x from t where a = 1 and b > 2",
			"SELECT `a` AS `x` FROM `t` WHERE (`a` = 1) AND (`b` > 2)",
		},
		{
			"select count(*) from t limit 5 offset 10",
			"SELECT COUNT(*) FROM `t` LIMIT 10, 5",
		},
		{
			"SELECT NOT a = 1, a IS NOT NULL, TRIM(b)",
			"SELECT NOT (`a` = 1), `a` IS NOT NULL, TRIM(BOTH ' ' FROM `b`)",
		},
		{
			"SELECT * FROM t LOCK IN SHARE MODE",
			"SELECT * FROM `t` LOCK IN SHARE MODE",
		},
		{
			"CREATE TABLE t (a INT UNSIGNED) ENGINE = InnoDB AUTO_INCREMENT = 10",
			"CREATE TABLE `t` (`a` INT UNSIGNED) ENGINE = 'InnoDB' AUTO_INCREMENT = 10",
		},
		{
			"insert t set a = 'it''s'",
			"INSERT INTO `t` SET `a` = 'it\\'s'",
		},
	}
	for _, tc := range tests {
		t.Run(tc.sql, func(t *testing.T) {
			stmt := parse(t, tc.sql, token.Generic)
			assert.Equal(t, tc.want, parser.Format(stmt))
		})
	}
}

// TestFormatRoundTrip checks that formatted output parses back to an equal
// tree.
func TestFormatRoundTrip(t *testing.T) {
	tests := []struct {
		sql     string
		dialect token.Dialect
	}{
		{"SELECT DISTINCT a, t.*, b + 1 * 2 AS c FROM t WHERE a BETWEEN 1 AND 10 OR NOT b", token.Generic},
		{"SELECT a FROM t1 AS x LEFT JOIN t2 ON x.id = t2.id, t3 CROSS JOIN t4", token.Generic},
		{"SELECT * FROM t PARTITION (p0) AS x FORCE INDEX FOR JOIN (i1) NATURAL JOIN u", token.Generic},
		{"SELECT * FROM (SELECT a FROM t) AS d (c) JOIN u USING (c)", token.Generic},
		{"SELECT a, COUNT(DISTINCT b) FROM t GROUP BY a WITH ROLLUP HAVING COUNT(DISTINCT b) > 1 ORDER BY a DESC LIMIT ?, ?", token.Generic},
		{"SELECT 1 UNION ALL SELECT 2 INTERSECT SELECT 3 ORDER BY 1 LIMIT 1 FOR UPDATE", token.Generic},
		{"(SELECT a FROM t) UNION (SELECT b FROM u LIMIT 2)", token.Generic},
		{"WITH RECURSIVE c (n) AS (SELECT 1 UNION ALL SELECT n + 1 FROM c WHERE n < 5) SELECT n FROM c", token.Generic},
		{"SELECT a IN (1, 2), b NOT IN (SELECT 1), c LIKE 'x%' ESCAPE '!', d NOT REGEXP '^a', e IS NOT TRUE", token.Generic},
		{"SELECT a > ALL (SELECT b FROM u), 1 MEMBER OF ('[1]'), a SOUNDS LIKE b, a COLLATE utf8mb4_bin", token.Generic},
		{"SELECT CASE a WHEN 1 THEN 'x' ELSE 'y' END, CASE WHEN a > 1 THEN 1 END", token.Generic},
		{"SELECT CAST(a AS SIGNED INTEGER), CAST(b AS DECIMAL(10, 2)), CAST(c AS CHAR(3) CHARACTER SET utf8mb4), BINARY d", token.Generic},
		{"SELECT CONVERT(a, DATETIME), CONVERT(b USING latin1), CAST(j AS UNSIGNED ARRAY)", token.Generic},
		{"SELECT TRIM(LEADING 'x' FROM a), SUBSTRING(a FROM 1 FOR 2), GROUP_CONCAT(a ORDER BY b SEPARATOR ',')", token.Generic},
		{"SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b ROWS BETWEEN 1 PRECEDING AND CURRENT ROW) FROM t", token.Generic},
		{"SELECT SUM(a) OVER w FROM t WINDOW w AS (ORDER BY b RANGE UNBOUNDED PRECEDING)", token.Generic},
		{"SELECT d + INTERVAL 1 DAY, DATE '2024-01-01', CURRENT_TIMESTAMP(6), @@session.autocommit, @v := 1", token.Generic},
		{"SELECT -a, ~b, !c, 1.5, 0x1F, 18446744073709551616, 'a' 'b', NULL, TRUE, ROW(1, 2), (1, 2)", token.Generic},
		{"SELECT MATCH (a, b) AGAINST ('x' IN NATURAL LANGUAGE MODE WITH QUERY EXPANSION) FROM t", token.Generic},
		{"SELECT * FROM t FOR UPDATE NO_WAIT", token.OceanBase},
		{"SELECT * FROM t FOR SHARE SKIP LOCKED", token.Generic},
		{"SELECT * FROM t FOR UPDATE WAIT 3", token.OceanBase},
		{"SELECT LAG(a) IGNORE NULLS OVER (ORDER BY b) FROM t", token.OceanBase},
		{"INSERT IGNORE INTO db.t (a, b) VALUES (1, DEFAULT), ROW(2, 3) ON DUPLICATE KEY UPDATE a = VALUES(a) + 1", token.Generic},
		{"INSERT INTO t SELECT * FROM u WHERE a = ?", token.Generic},
		{"UPDATE IGNORE t1, t2 SET t1.a = t2.b WHERE t1.id = t2.id", token.Generic},
		{"UPDATE t SET a = a + 1, b := DEFAULT ORDER BY a LIMIT 10", token.Generic},
		{"DELETE FROM t WHERE a IS NULL ORDER BY b LIMIT 1", token.Generic},
		{"COMMIT", token.Generic},
		{`CREATE TABLE IF NOT EXISTS db.users (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name VARCHAR(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin DEFAULT '' COMMENT 'it''s',
			updated TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uk (name(10) DESC) USING BTREE COMMENT 'u',
			INDEX (updated)
		) ENGINE = InnoDB DEFAULT CHARSET = utf8mb4 COMMENT = 'users'`, token.Generic},
		{"CREATE TABLE t (a INT, KEY k (a) BLOCK_SIZE 16384) REPLICA_NUM = 3 BLOCK_SIZE = 16384 USE_BLOOM_FILTER = FALSE", token.OceanBase},
	}
	for _, tc := range tests {
		t.Run(normalize.Whitespace(tc.sql), func(t *testing.T) {
			stmt := parse(t, tc.sql, tc.dialect)
			text := parser.Format(stmt)

			again, err := parser.ParseString(context.Background(), text, tc.dialect)
			require.NoError(t, err, "formatted: %s", text)
			assert.True(t, ast.Equal(stmt, again), "formatted: %s\nwant:\n%s\ngot:\n%s",
				text, parser.Explain(stmt), parser.Explain(again))

			// Formatting is stable.
			assert.Equal(t, text, parser.Format(again))
		})
	}
}
