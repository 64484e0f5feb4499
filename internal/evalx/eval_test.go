package evalx

import (
	"errors"
	"testing"

	"github.com/totallysecure/mathnotes/internal/common"
)

func TestEvaluate_Valid(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1+1", 2},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"1 - 2 - 3", -4},
		{"100/10/5", 2},
		{"-5+2", -3},
		{"-(2+3)", -5},
		{"+7", 7},
		{"3.5*2", 7},
		{"  42  ", 42},
		{"((1))", 1},
		{"2*-3", -6},
	}

	e := NewArithmetic()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := e.Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Invalid(t *testing.T) {
	exprs := []string{
		"",
		"1+",
		"*2",
		"(1+2",
		"1+2)",
		"1..2",
		".",
		"1 2",
		"4/0",
		"1/(3-3)",
	}

	e := NewArithmetic()
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := e.Evaluate(expr)
			if !errors.Is(err, common.ErrEvaluation) {
				t.Fatalf("expected ErrEvaluation, got %v", err)
			}
		})
	}
}
