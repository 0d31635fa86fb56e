// Package schema bootstraps the keyspace and tables before the server
// accepts any request. Every statement is idempotent (IF NOT EXISTS), so
// running the initializer against an already-initialized cluster is a no-op.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/ViniciusSMLuz/movie-review/pkg/database"

	"go.uber.org/zap"
)

// Keyspace is fixed; tables are always addressed fully qualified so the
// session does not need to be bound to a keyspace.
const Keyspace = "movie_review"

// Statements returns the bootstrap DDL in execution order.
//
// The reviews table is the wide-row ledger: one partition per movie, rows
// clustered newest-first on created_at with review_id as the tie-break key,
// so the "all reviews of one movie, newest first" query is a single
// sequential partition scan with no secondary index.
func Statements() []string {
	return []string{
		fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
			WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1}`, Keyspace),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.movies (
			id    uuid PRIMARY KEY,
			title text
		)`, Keyspace),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.reviews (
			movie_id   uuid,
			created_at timestamp,
			review_id  uuid,
			reviewer   text,
			rating     int,
			PRIMARY KEY ((movie_id), created_at, review_id)
		) WITH CLUSTERING ORDER BY (created_at DESC, review_id ASC)`, Keyspace),
	}
}

// Init runs the bootstrap DDL. Any failure aborts immediately; the caller
// must treat the error as fatal and not begin serving requests.
func Init(ctx context.Context, session database.Session, log *zap.Logger) error {
	for _, stmt := range Statements() {
		if err := session.Query(ctx, stmt).Exec(); err != nil {
			return fmt.Errorf("schema init failed: %w (stmt=%s)", err, oneLine(stmt))
		}
	}

	log.Info("Schema initialized",
		zap.String("keyspace", Keyspace),
		zap.Int("statements", len(Statements())),
	)
	return nil
}

// oneLine collapses whitespace for error messages.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
