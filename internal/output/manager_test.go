package output

import (
	"errors"
	"testing"

	"mdpress/internal/convert"
)

type recordingSink struct {
	writes   []any
	closed   bool
	writeErr error
	closeErr error
}

func (s *recordingSink) Write(v any) error {
	s.writes = append(s.writes, v)
	return s.writeErr
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeErr
}

func TestManager_FansOutWrites(t *testing.T) {
	m := NewManager()
	a := &recordingSink{}
	b := &recordingSink{}
	if err := m.AddSink(a); err != nil {
		t.Fatalf("AddSink returned error: %v", err)
	}
	if err := m.AddSink(b); err != nil {
		t.Fatalf("AddSink returned error: %v", err)
	}

	r := convert.Result{Source: "a.md", Status: convert.StatusOK}
	if err := m.Write(r); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if len(a.writes) != 1 || len(b.writes) != 1 {
		t.Fatalf("expected one write per sink, got %d and %d", len(a.writes), len(b.writes))
	}
}

func TestManager_WriteContinuesPastFailingSink(t *testing.T) {
	m := NewManager()
	bad := &recordingSink{writeErr: errors.New("disk full")}
	good := &recordingSink{}
	_ = m.AddSink(bad)
	_ = m.AddSink(good)

	err := m.Write(convert.Result{Source: "a.md"})
	if err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if len(good.writes) != 1 {
		t.Fatalf("healthy sink should still receive the write")
	}
}

func TestManager_CloseClosesAllSinks(t *testing.T) {
	m := NewManager()
	a := &recordingSink{closeErr: errors.New("close failed")}
	b := &recordingSink{}
	_ = m.AddSink(a)
	_ = m.AddSink(b)

	if err := m.Close(); err == nil {
		t.Fatalf("expected close error to propagate")
	}
	if !a.closed || !b.closed {
		t.Fatalf("all sinks must be closed, got %v and %v", a.closed, b.closed)
	}
}

func TestManager_RejectsNilSink(t *testing.T) {
	m := NewManager()
	if err := m.AddSink(nil); err == nil {
		t.Fatalf("expected error for nil sink")
	}
}
