package repository

import (
	"context"
	"reflect"

	"github.com/ViniciusSMLuz/movie-review/pkg/database"
)

// fakeSession records every bound statement and plays back canned rows,
// standing in for the storage engine behind the database.Session seam.
type fakeSession struct {
	execs   []boundStmt
	selects []boundStmt

	execErr error
	rows    [][]any
	iterErr error
}

type boundStmt struct {
	stmt string
	args []any
}

func (s *fakeSession) Query(_ context.Context, stmt string, args ...any) database.Query {
	return &fakeQuery{session: s, bound: boundStmt{stmt: stmt, args: args}}
}

func (s *fakeSession) Close() {}

type fakeQuery struct {
	session *fakeSession
	bound   boundStmt
}

func (q *fakeQuery) Exec() error {
	q.session.execs = append(q.session.execs, q.bound)
	return q.session.execErr
}

func (q *fakeQuery) Iter() database.Iter {
	q.session.selects = append(q.session.selects, q.bound)
	return &fakeIter{rows: q.session.rows, err: q.session.iterErr}
}

type fakeIter struct {
	rows [][]any
	next int
	err  error
}

func (it *fakeIter) Scan(dest ...any) bool {
	if it.err != nil || it.next >= len(it.rows) {
		return false
	}
	row := it.rows[it.next]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	it.next++
	return true
}

func (it *fakeIter) Close() error { return it.err }
