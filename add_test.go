package seek

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAddNumeric(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if s := Add(1, 2); s != 3 {
		t.Errorf("Add(1, 2) = %d, should be 3", s)
	}
	if s := Add(1.5, 2.25); s != 3.75 {
		t.Errorf("Add(1.5, 2.25) = %f, should be 3.75", s)
	}
	if s := Add("Hello ", "World"); s != "Hello World" {
		t.Errorf("Add on strings = %q", s)
	}
}

// bar always adds up to the same fixed value, whatever the operands are.
type bar struct{}

func (bar) Add(bar) bar { return bar{} }

func TestAddOf(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if s := AddOf(bar{}, bar{}); s != (bar{}) {
		t.Error("AddOf(bar, bar) should equal bar{}")
	}
}

type foo struct{}

func TestSum(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := Sum(1, 2)
	if err != nil {
		t.Fatal(err.Error())
	}
	if s != 3 {
		t.Errorf("Sum(1, 2) = %v, should be 3", s)
	}
	s, err = Sum(bar{}, bar{})
	if err != nil {
		t.Fatal(err.Error())
	}
	if s != (bar{}) {
		t.Errorf("Sum(bar, bar) = %v, should be bar{}", s)
	}
}

func TestSumUnsupportedOperand(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Sum(foo{}, foo{}); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Sum(foo, foo) err = %v, expected ErrUnsupportedOperand", err)
	}
	if _, err := Sum(nil, 1); !errors.Is(err, ErrUnsupportedOperand) {
		t.Errorf("Sum(nil, 1) err = %v, expected ErrUnsupportedOperand", err)
	}
	if _, err := Sum(1, "one"); !errors.Is(err, ErrOperandMismatch) {
		t.Errorf("Sum(1, \"one\") err = %v, expected ErrOperandMismatch", err)
	}
}

type meters float64

func TestSumNamedType(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := Sum(meters(1.5), meters(2.5))
	if err != nil {
		t.Fatal(err.Error())
	}
	m, ok := s.(meters)
	if !ok {
		t.Fatalf("Sum on meters returned %T, expected meters", s)
	}
	if m != 4 {
		t.Errorf("Sum(1.5m, 2.5m) = %v, should be 4m", m)
	}
}
