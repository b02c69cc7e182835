package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{in: "900", want: 90000},
		{in: "900.5", want: 90050},
		{in: "900.50", want: 90050},
		{in: " 12.34 ", want: 1234},
		{in: "1,250.75", want: 125075},
		{in: "0.005", want: 1},
		{in: "0.004", want: 0},
		{in: "-3", want: -300},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "12.3.4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidAmount", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount Amount
		symbol string
		want   string
	}{
		{90050, "₹", "₹900.50"},
		{30000, "₹", "₹300.00"},
		{7, "₹", "₹0.07"},
		{0, "₹", "₹0.00"},
		{-300, "₹", "-₹3.00"},
		{125, "$", "$1.25"},
	}

	for _, tt := range tests {
		if got := tt.amount.Format(tt.symbol); got != tt.want {
			t.Errorf("Amount(%d).Format(%q) = %q, want %q", tt.amount, tt.symbol, got, tt.want)
		}
	}

	if got := Amount(1234).String(); got != "₹12.34" {
		t.Errorf("String() = %q, want ₹12.34", got)
	}
}

func TestSumAndAbs(t *testing.T) {
	if got := Sum([]Amount{301, 300, 300}); got != 901 {
		t.Errorf("Sum = %d, want 901", got)
	}
	if got := Sum(nil); got != Zero {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
	if got := Amount(-500).Abs(); got != 500 {
		t.Errorf("Abs = %d, want 500", got)
	}
	if Amount(0).IsPositive() || !Amount(1).IsPositive() {
		t.Error("IsPositive mismatch")
	}
}
