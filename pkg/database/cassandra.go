package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ViniciusSMLuz/movie-review/pkg/utils"

	"github.com/gocql/gocql"
)

// Session interface untuk abstraction storage engine
type Session interface {
	Query(ctx context.Context, stmt string, args ...any) Query
	Close()
}

// Query is a single bound statement ready to execute.
type Query interface {
	Exec() error
	Iter() Iter
}

// Iter walks the rows produced by a query.
type Iter interface {
	Scan(dest ...any) bool
	Close() error
}

// CassandraSession wrapper struct
type CassandraSession struct {
	session *gocql.Session
}

// Query implements Session
func (s *CassandraSession) Query(ctx context.Context, stmt string, args ...any) Query {
	return &cassandraQuery{query: s.session.Query(stmt, args...).WithContext(ctx)}
}

// Close implements Session
func (s *CassandraSession) Close() {
	s.session.Close()
}

type cassandraQuery struct {
	query *gocql.Query
}

func (q *cassandraQuery) Exec() error {
	return q.query.Exec()
}

func (q *cassandraQuery) Iter() Iter {
	return q.query.Iter()
}

// Connect membuat koneksi ke Cassandra cluster
func Connect(config utils.CassandraConfig) (Session, error) {
	consistency, err := gocql.ParseConsistencyWrapper(config.Consistency)
	if err != nil {
		return nil, fmt.Errorf("parse consistency %q: %w", config.Consistency, err)
	}

	cluster := gocql.NewCluster(config.Host)
	cluster.Consistency = consistency
	cluster.ProtoVersion = 4
	cluster.ConnectTimeout = 5 * time.Second
	cluster.Timeout = 5 * time.Second

	// Route requests to the local datacenter first
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(
		gocql.DCAwareRoundRobinPolicy(config.Datacenter),
	)

	// CreateSession dials the contact point, which doubles as the ping
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("create cassandra session: %w", err)
	}

	return &CassandraSession{session: session}, nil
}
