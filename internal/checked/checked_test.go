package checked

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
		ok   bool
	}{
		{"simple", 2, 3, 5, true},
		{"negatives", -2, -3, -5, true},
		{"mixed", math.MaxInt64, math.MinInt64, -1, true},
		{"max plus one", math.MaxInt64, 1, 0, false},
		{"min minus one", math.MinInt64, -1, 0, false},
		{"max plus max", math.MaxInt64, math.MaxInt64, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Add(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Add(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
		ok   bool
	}{
		{"simple", 6, 7, 42, true},
		{"zero left", 0, math.MaxInt64, 0, true},
		{"zero right", math.MinInt64, 0, 0, true},
		{"negative", -3, 9, -27, true},
		{"max times one", math.MaxInt64, 1, math.MaxInt64, true},
		{"max times two", math.MaxInt64, 2, 0, false},
		{"min times minus one", math.MinInt64, -1, 0, false},
		{"minus one times min", -1, math.MinInt64, 0, false},
		{"large square", 1 << 32, 1 << 32, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mul(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Mul(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Mul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestShl(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		s    uint
		want int64
		ok   bool
	}{
		{"no shift", 5, 0, 5, true},
		{"zero value", 0, 63, 0, true},
		{"small", 3, 4, 48, true},
		{"negative", -3, 2, -12, true},
		{"max bit", 1, 62, 1 << 62, true},
		{"too far", 1, 63, 0, false},
		{"overflow", math.MaxInt64 / 2, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Shl(tt.v, tt.s)
			if ok != tt.ok {
				t.Fatalf("Shl(%d, %d) ok = %v, want %v", tt.v, tt.s, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Shl(%d, %d) = %d, want %d", tt.v, tt.s, got, tt.want)
			}
		})
	}
}

func TestNegAbs(t *testing.T) {
	if got, ok := Neg(7); !ok || got != -7 {
		t.Errorf("Neg(7) = %d, %v", got, ok)
	}
	if _, ok := Neg(math.MinInt64); ok {
		t.Error("Neg(MinInt64) should not be representable")
	}
	if got, ok := Abs(-7); !ok || got != 7 {
		t.Errorf("Abs(-7) = %d, %v", got, ok)
	}
	if got, ok := Abs(math.MaxInt64); !ok || got != math.MaxInt64 {
		t.Errorf("Abs(MaxInt64) = %d, %v", got, ok)
	}
	if _, ok := Abs(math.MinInt64); ok {
		t.Error("Abs(MinInt64) should not be representable")
	}
}
