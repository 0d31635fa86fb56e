package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ViniciusSMLuz/movie-review/pkg/database"

	"go.uber.org/zap"
)

type fakeSession struct {
	executed []string
	failOn   string
	err      error
}

func (s *fakeSession) Query(_ context.Context, stmt string, _ ...any) database.Query {
	return &fakeQuery{session: s, stmt: stmt}
}

func (s *fakeSession) Close() {}

type fakeQuery struct {
	session *fakeSession
	stmt    string
}

func (q *fakeQuery) Exec() error {
	q.session.executed = append(q.session.executed, q.stmt)
	if q.session.failOn != "" && strings.Contains(q.stmt, q.session.failOn) {
		return q.session.err
	}
	return nil
}

func (q *fakeQuery) Iter() database.Iter { return nil }

func TestStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range Statements() {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement is not idempotent: %s", stmt)
		}
	}
}

func TestStatementsDefineLedgerClusteringOrder(t *testing.T) {
	var reviews string
	for _, stmt := range Statements() {
		if strings.Contains(stmt, ".reviews") {
			reviews = stmt
		}
	}
	if reviews == "" {
		t.Fatal("no reviews table statement")
	}

	if !strings.Contains(reviews, "PRIMARY KEY ((movie_id), created_at, review_id)") {
		t.Errorf("reviews table missing partition/clustering key: %s", reviews)
	}
	if !strings.Contains(reviews, "CLUSTERING ORDER BY (created_at DESC, review_id ASC)") {
		t.Errorf("reviews table missing newest-first clustering order: %s", reviews)
	}
}

func TestInitExecutesAllStatementsInOrder(t *testing.T) {
	session := &fakeSession{}

	if err := Init(context.Background(), session, zap.NewNop()); err != nil {
		t.Fatalf("init: %v", err)
	}

	want := Statements()
	if len(session.executed) != len(want) {
		t.Fatalf("want %d statements, got %d", len(want), len(session.executed))
	}
	for i := range want {
		if session.executed[i] != want[i] {
			t.Errorf("statement %d out of order:\nwant %s\ngot  %s", i, want[i], session.executed[i])
		}
	}

	// Running it again must not error: every statement is IF NOT EXISTS.
	if err := Init(context.Background(), session, zap.NewNop()); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestInitStopsOnFirstFailure(t *testing.T) {
	boom := errors.New("unavailable")
	session := &fakeSession{failOn: "CREATE KEYSPACE", err: boom}

	err := Init(context.Background(), session, zap.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error does not wrap cause: %v", err)
	}
	if len(session.executed) != 1 {
		t.Errorf("init continued past failed statement: executed %d", len(session.executed))
	}
}
