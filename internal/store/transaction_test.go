package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The stub driver below backs a real *sql.DB so RunInTransaction can be
// exercised without a database. The connection records whether its single
// transaction was committed or rolled back.

type stubConn struct {
	beginErr   error
	commitErr  error
	committed  bool
	rolledBack bool
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("statements not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	if c.beginErr != nil {
		return nil, c.beginErr
	}
	return &stubTx{conn: c}, nil
}

type stubTx struct {
	conn *stubConn
}

func (t *stubTx) Commit() error {
	t.conn.committed = true
	return t.conn.commitErr
}

func (t *stubTx) Rollback() error {
	t.conn.rolledBack = true
	return nil
}

type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(name string) (driver.Conn, error) {
	return d.conn, nil
}

// sql.Register panics on duplicate names, so every test registers under a
// fresh one.
var stubDriverSeq atomic.Int64

func openStubDB(t *testing.T, conn *stubConn) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("txstub-%d", stubDriverSeq.Add(1))
	sql.Register(name, &stubDriver{conn: conn})

	db, err := sql.Open(name, name)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestRunInTransactionCommitsOnSuccess(t *testing.T) {
	conn := &stubConn{}
	db := openStubDB(t, conn)

	var gotTx *sql.Tx
	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		gotTx = tx
		return nil
	})

	require.NoError(t, err)
	assert.NotNil(t, gotTx)
	assert.True(t, conn.committed)
	assert.False(t, conn.rolledBack)
}

func TestRunInTransactionRollsBackOnError(t *testing.T) {
	conn := &stubConn{}
	db := openStubDB(t, conn)

	opErr := errors.New("operation failed")
	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return opErr
	})

	assert.ErrorIs(t, err, opErr)
	assert.True(t, conn.rolledBack)
	assert.False(t, conn.committed)
}

func TestRunInTransactionRollsBackOnPanic(t *testing.T) {
	conn := &stubConn{}
	db := openStubDB(t, conn)

	recovered := func() (p any) {
		defer func() { p = recover() }()
		_ = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			panic("unexpected state")
		})
		return nil
	}()

	assert.Equal(t, "unexpected state", recovered)
	assert.True(t, conn.rolledBack)
	assert.False(t, conn.committed)
}

func TestRunInTransactionWrapsBeginFailure(t *testing.T) {
	conn := &stubConn{beginErr: errors.New("connection refused")}
	db := openStubDB(t, conn)

	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		t.Fatal("function must not run when the transaction cannot begin")
		return nil
	})

	assert.ErrorIs(t, err, ErrTransactionFailed)
}

func TestRunInTransactionWrapsCommitFailure(t *testing.T) {
	conn := &stubConn{commitErr: errors.New("disk full")}
	db := openStubDB(t, conn)

	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrTransactionFailed)
	assert.True(t, conn.committed)
}
