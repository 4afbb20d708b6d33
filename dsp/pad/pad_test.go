package pad

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestPadModes(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		width int
		mode  Mode
		opts  []Option
		want  []float64
	}{
		{name: "edge", data: []float64{1, 2, 3, 4}, width: 2, mode: Edge, want: []float64{1, 1, 1, 2, 3, 4, 4, 4}},
		{name: "zero", data: []float64{1, 2, 3, 4}, width: 2, mode: Constant, want: []float64{0, 0, 1, 2, 3, 4, 0, 0}},
		{name: "constant value", data: []float64{1, 2}, width: 1, mode: Constant, opts: []Option{WithConstant(-1)}, want: []float64{-1, 1, 2, -1}},
		{name: "reflect", data: []float64{1, 2, 3, 4}, width: 2, mode: Reflect, want: []float64{3, 2, 1, 2, 3, 4, 3, 2}},
		{name: "symmetric", data: []float64{1, 2, 3, 4}, width: 2, mode: Symmetric, want: []float64{2, 1, 1, 2, 3, 4, 4, 3}},
		{name: "wrap", data: []float64{1, 2, 3, 4}, width: 2, mode: Wrap, want: []float64{3, 4, 1, 2, 3, 4, 1, 2}},
		{name: "edge wide", data: []float64{1, 2, 3}, width: 5, mode: Edge, want: []float64{1, 1, 1, 1, 1, 1, 2, 3, 3, 3, 3, 3, 3}},
		{name: "reflect wide", data: []float64{1, 2, 3}, width: 5, mode: Reflect, want: []float64{2, 1, 2, 3, 2, 1, 2, 3, 2, 1, 2, 3, 2}},
		{name: "symmetric wide", data: []float64{1, 2, 3}, width: 5, mode: Symmetric, want: []float64{2, 3, 3, 2, 1, 1, 2, 3, 3, 2, 1, 1, 2}},
		{name: "wrap wide", data: []float64{1, 2, 3}, width: 5, mode: Wrap, want: []float64{2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2}},
		{name: "reflect single", data: []float64{7}, width: 2, mode: Reflect, want: []float64{7, 7, 7, 7, 7}},
		{name: "zero width", data: []float64{1, 2}, width: 0, mode: Wrap, want: []float64{1, 2}},
		{name: "constant empty", data: nil, width: 2, mode: Constant, want: []float64{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pad(tt.data, tt.width, tt.mode, tt.opts...)
			if err != nil {
				t.Fatalf("Pad error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
		})
	}
}

func TestPadDoesNotMutateInput(t *testing.T) {
	data := []float64{1, 2, 3}

	out, err := Pad(data, 3, Reflect)
	if err != nil {
		t.Fatalf("Pad error: %v", err)
	}

	out[3] = 100
	testutil.RequireSliceNearlyEqual(t, data, []float64{1, 2, 3}, 0)
}

func TestPadErrors(t *testing.T) {
	if _, err := Pad([]float64{1}, -1, Edge); !errors.Is(err, ErrNegativeWidth) {
		t.Fatalf("err=%v, want ErrNegativeWidth", err)
	}

	for _, mode := range []Mode{Edge, Reflect, Symmetric, Wrap} {
		if _, err := Pad(nil, 1, mode); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("mode %v: err=%v, want ErrEmptyInput", mode, err)
		}
	}

	if _, err := Pad([]float64{1}, 1, Mode(99)); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err=%v, want ErrUnknownMode", err)
	}

	out, err := Pad(nil, 0, Edge)
	if err != nil || len(out) != 0 {
		t.Fatalf("Pad(nil, 0) = %v, %v; want empty, nil", out, err)
	}
}

func TestPadTo(t *testing.T) {
	dst := make([]float64, 7)
	if err := PadTo(dst, []float64{1, 2, 3}, 2, Symmetric); err != nil {
		t.Fatalf("PadTo error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, []float64{2, 1, 1, 2, 3, 3, 2}, 0)

	err := PadTo(make([]float64, 6), []float64{1, 2, 3}, 2, Edge)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err=%v, want ErrLengthMismatch", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{in: "edge", want: Edge},
		{in: "constant", want: Constant},
		{in: "zero", want: Constant},
		{in: " Reflect ", want: Reflect},
		{in: "SYMMETRIC", want: Symmetric},
		{in: "wrap", want: Wrap},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", tt.in, err)
		}

		if got != tt.want {
			t.Fatalf("ParseMode(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("mean"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err=%v, want ErrUnknownMode", err)
	}
}

func TestModeString(t *testing.T) {
	for m, name := range modeNames {
		if m.String() != name {
			t.Fatalf("%d.String()=%q, want %q", int(m), m.String(), name)
		}

		parsed, err := ParseMode(m.String())
		if err != nil || parsed != m {
			t.Fatalf("ParseMode(%q)=%v, %v", m.String(), parsed, err)
		}
	}

	if got := Mode(42).String(); got != "Mode(42)" {
		t.Fatalf("String()=%q, want Mode(42)", got)
	}
}
