package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeTxNoPing satisfies TxRunner but not Pinger
type fakeTxNoPing struct{}

func (f *fakeTxNoPing) Tx(ctx context.Context, fn func(q RowQuerier) error) error { return nil }
func (f *fakeTxNoPing) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	var z CommandTag
	return z, nil
}

func (f *fakeTxNoPing) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	var z Rows
	return z, nil
}

func (f *fakeTxNoPing) QueryRow(ctx context.Context, sql string, args ...any) Row {
	var z Row
	return z
}

// fakeTxWithPing satisfies TxRunner and Pinger
type fakeTxWithPing struct {
	fakeTxNoPing
	err error
}

func (f *fakeTxWithPing) Ping(context.Context) error { return f.err }

func TestGuard_NilStore(t *testing.T) {
	t.Parallel()

	var s *Store = nil
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("nil store should return error")
	}
}

func TestGuard_NoSeams(t *testing.T) {
	t.Parallel()

	s := &Store{}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("expected nil error when no seams are set, got %v", err)
	}
}

func TestGuard_PG_NotPinger_Ignored(t *testing.T) {
	t.Parallel()

	s := &Store{PG: &fakeTxNoPing{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("expected nil error when PG is not a Pinger, got %v", err)
	}
}

func TestGuard_PG_PingOK(t *testing.T) {
	t.Parallel()

	s := &Store{PG: &fakeTxWithPing{err: nil}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("expected nil error when PG.Ping succeeds, got %v", err)
	}
}

func TestGuard_PG_PingError_Wrapped(t *testing.T) {
	t.Parallel()

	s := &Store{PG: &fakeTxWithPing{err: errors.New("boom")}}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected non-nil error when PG.Ping fails")
	}
	// Guard prefixes PG errors with "pg: "
	if !strings.HasPrefix(err.Error(), "pg: ") {
		t.Fatalf("expected error to be prefixed with 'pg: ', got %q", err.Error())
	}
}

// fakeCHNoPing satisfies Clickhouse but not Pinger
type fakeCHNoPing struct{}

func (fakeCHNoPing) Query(context.Context, string, ...any) (Rows, error) {
	var z Rows
	return z, nil
}
func (fakeCHNoPing) Close() error { return nil }

// fakeCHWithPing satisfies Clickhouse and Pinger
type fakeCHWithPing struct {
	fakeCHNoPing
	err error
}

func (f fakeCHWithPing) Ping(context.Context) error { return f.err }

func TestGuard_CH_NotPinger_Ignored(t *testing.T) {
	t.Parallel()

	s := &Store{CH: fakeCHNoPing{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("expected nil error when CH is not a Pinger, got %v", err)
	}
}

func TestGuard_CH_PingError_Wrapped(t *testing.T) {
	t.Parallel()

	s := &Store{CH: fakeCHWithPing{err: errors.New("boom")}}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected non-nil error when CH.Ping fails")
	}
	if !strings.HasPrefix(err.Error(), "ch: ") {
		t.Fatalf("expected error to be prefixed with 'ch: ', got %q", err.Error())
	}
}

func TestGuard_BothSeamsFailing_JoinsErrors(t *testing.T) {
	t.Parallel()

	s := &Store{
		PG: &fakeTxWithPing{err: errors.New("pg down")},
		CH: fakeCHWithPing{err: errors.New("ch down")},
	}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected non-nil error when both seams fail")
	}
	if !strings.Contains(err.Error(), "pg down") || !strings.Contains(err.Error(), "ch down") {
		t.Fatalf("expected both failures reported, got %q", err.Error())
	}
}
