package calculator

import (
	"testing"
)

// TestAdd tests the Add function.
func TestAdd(t *testing.T) {
	result := Add(2, 3)
	if result != 5 {
		t.Errorf("Add(2, 3) = %d; want 5", result)
	}

	// Additional tests
	cases := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{-1, 1, 0},
		{10, 5, 15},
		{-7, -4, -11},
	}

	for _, tc := range cases {
		got := Add(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Add(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestAddCommutative checks that argument order doesn't matter.
func TestAddCommutative(t *testing.T) {
	pairs := []struct {
		a, b int
	}{
		{2, 3},
		{-5, 8},
		{0, 42},
		{-1, -1},
	}

	for _, p := range pairs {
		if Add(p.a, p.b) != Add(p.b, p.a) {
			t.Errorf("Add(%d, %d) != Add(%d, %d)", p.a, p.b, p.b, p.a)
		}
	}
}

// TestSubtract tests the Subtract function.
func TestSubtract(t *testing.T) {
	result := Subtract(5, 8)
	if result != -3 {
		t.Errorf("Subtract(5, 8) = %d; want -3", result)
	}

	cases := []struct {
		a, b, want int
	}{
		{5, 3, 2},
		{0, 0, 0},
		{-2, -2, 0},
		{3, 10, -7},
	}

	for _, tc := range cases {
		got := Subtract(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Subtract(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}

	// Swapping the operands negates the result
	if Subtract(9, 4) != -Subtract(4, 9) {
		t.Errorf("Subtract(9, 4) = %d; want %d", Subtract(9, 4), -Subtract(4, 9))
	}
}

// TestMultiply tests the Multiply function.
func TestMultiply(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 5, 0},
		{1, 1, 1},
		{2, 3, 6},
		{4, -3, -12},
		{-2, -3, 6},
	}

	for _, tc := range cases {
		got := Multiply(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Multiply(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}

		// Commutativity
		if swapped := Multiply(tc.b, tc.a); swapped != got {
			t.Errorf("Multiply(%d, %d) = %d; want %d", tc.b, tc.a, swapped, got)
		}
	}
}

// TestDivide tests the Divide function, including fractional quotients.
func TestDivide(t *testing.T) {
	result := Divide(10, 2)
	if result != 5.0 {
		t.Errorf("Divide(10, 2) = %v; want 5", result)
	}

	// Fractional results must not be truncated
	cases := []struct {
		a, b int
		want float64
	}{
		{10, 4, 2.5},
		{7, 2, 3.5},
		{1, 4, 0.25},
		{-9, 2, -4.5},
		{0, 7, 0.0},
	}

	for _, tc := range cases {
		got := Divide(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Divide(%d, %d) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestDivideByZero verifies the silent-zero fallback for a zero divisor.
func TestDivideByZero(t *testing.T) {
	for _, a := range []int{9, 0, -15, 1 << 30} {
		got := Divide(a, 0)
		if got != 0.0 {
			t.Errorf("Divide(%d, 0) = %v; want 0.0", a, got)
		}
	}

	t.Logf("Division by zero handled correctly, returned %v", Divide(9, 0))
}
