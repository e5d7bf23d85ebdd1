package store

import (
	"errors"
	"testing"
)

// fakeCHRows implements ch.Rows for adapter tests
type fakeCHRows struct {
	n        int
	pos      int
	closed   bool
	err      error
	closeErr error
}

func (f *fakeCHRows) Next() bool {
	if f.pos >= f.n {
		return false
	}
	f.pos++
	return true
}

func (f *fakeCHRows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if p, ok := dest[0].(*int); ok {
			*p = f.pos
		}
	}
	return nil
}

func (f *fakeCHRows) Err() error        { return f.err }
func (f *fakeCHRows) Close() error      { f.closed = true; return f.closeErr }
func (f *fakeCHRows) Columns() []string { return []string{"v"} }

// TestRowsAdapter_IterationAndClose walks the wrapped rows and closes the inner set
func TestRowsAdapter_IterationAndClose(t *testing.T) {
	t.Parallel()

	inner := &fakeCHRows{n: 2}
	var rows Rows = &rowsAdapter{r: inner}

	var got []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			t.Fatalf("Scan returned error: %v", err)
		}
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected rows scanned: %v", got)
	}
	if rows.Err() != nil {
		t.Fatalf("Err not nil: %v", rows.Err())
	}
	if cols := rows.Columns(); len(cols) != 1 || cols[0] != "v" {
		t.Fatalf("unexpected columns: %v", cols)
	}

	rows.Close()
	if !inner.closed {
		t.Fatalf("Close did not reach the inner rows")
	}
}

// TestRowsAdapter_ErrPassthrough surfaces the inner iteration error
func TestRowsAdapter_ErrPassthrough(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	var rows Rows = &rowsAdapter{r: &fakeCHRows{err: sentinel}}
	if !errors.Is(rows.Err(), sentinel) {
		t.Fatalf("expected inner error, got %v", rows.Err())
	}
}

// TestDrainPing_CloseErrorSurfaces folds a Close failure into the result
func TestDrainPing_CloseErrorSurfaces(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("close failed")
	rows := &fakeCHRows{n: 1, closeErr: sentinel}
	if err := drainPing(rows); !errors.Is(err, sentinel) {
		t.Fatalf("expected close error to surface, got %v", err)
	}
	if !rows.closed {
		t.Fatal("rows were not closed")
	}
}

// TestDrainPing_NoRowsJoinsCloseError keeps both failures visible
func TestDrainPing_NoRowsJoinsCloseError(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("close failed")
	err := drainPing(&fakeCHRows{n: 0, closeErr: closeErr})
	if err == nil {
		t.Fatal("expected error when the probe returns no rows")
	}
	if !errors.Is(err, closeErr) {
		t.Fatalf("expected close error joined into result, got %v", err)
	}
}

// TestDrainPing_HappyPath reads the probe row and closes clean
func TestDrainPing_HappyPath(t *testing.T) {
	t.Parallel()

	rows := &fakeCHRows{n: 1}
	if err := drainPing(rows); err != nil {
		t.Fatalf("drainPing returned error: %v", err)
	}
	if !rows.closed {
		t.Fatal("rows were not closed")
	}
}
