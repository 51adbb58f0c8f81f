package decimal

import (
	"errors"
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func money(s string) Money {
	return NewMoneyFromDecimal(stddec.RequireFromString(s))
}

func TestNewMoneyFromDecimal(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
	if m.String() != "10.13" { // rounded for display
		t.Fatalf("display mismatch: got %s", m.String())
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-2.345", "-2.35"},
		{"5833.333333", "5833.33"},
	}
	for _, c := range cases {
		got := money(c.in).Round().Decimal.StringFixed(2)
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestMonthly(t *testing.T) {
	if got := money("1200").Monthly().String(); got != "100.00" {
		t.Fatalf("Monthly of 1200 got %s", got)
	}
	if got := money("70000").Monthly().Round().String(); got != "5833.33" {
		t.Fatalf("Monthly of 70000 got %s", got)
	}
}

func TestGrowAndDiscount(t *testing.T) {
	m := money("1000")
	if got := money("10").Grow(stddec.NewFromFloat(1.0005)); !got.Decimal.Equal(stddec.NewFromFloat(10.005)) {
		t.Fatalf("Grow must not round, got %s", got.Decimal)
	}
	if got := m.Grow(stddec.NewFromFloat(1.005)).String(); got != "1005.00" {
		t.Fatalf("Grow got %s", got)
	}
	if got := m.Discount(stddec.NewFromFloat(3)).Round().String(); got != "333.33" {
		t.Fatalf("Discount got %s", got)
	}
	if got := m.Add(money("0.5")).String(); got != "1000.50" {
		t.Fatalf("Add got %s", got)
	}
}

func TestMonthlyFactor(t *testing.T) {
	f := MonthlyFactor(stddec.NewFromFloat(0.03))
	if math.Abs(math.Pow(f, 12)-1.03) > 1e-12 {
		t.Fatalf("MonthlyFactor^12 = %v, want 1.03", math.Pow(f, 12))
	}
	if MonthlyFactor(stddec.Zero) != 1 {
		t.Fatalf("zero rate must give factor 1")
	}
	if AnnualFactor(stddec.NewFromFloat(0.07)) != 1.07 {
		t.Fatalf("AnnualFactor mismatch")
	}
}

func TestCompound(t *testing.T) {
	got, err := Compound(1.03, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.InexactFloat64()-math.Pow(1.03, 30)) > 1e-12 {
		t.Fatalf("Compound got %v", got)
	}

	one, err := Compound(1.5, 0)
	if err != nil || !one.Equal(stddec.NewFromInt(1)) {
		t.Fatalf("Compound with zero periods must be 1, got %v (%v)", one, err)
	}

	f, err := Factor(1.25)
	if err != nil || !f.Equal(stddec.NewFromFloat(1.25)) {
		t.Fatalf("Factor mismatch: %v (%v)", f, err)
	}
}

func TestNotFinite(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (stddec.Decimal, error)
	}{
		{"positive infinity", func() (stddec.Decimal, error) { return Factor(math.Inf(1)) }},
		{"negative infinity", func() (stddec.Decimal, error) { return Factor(math.Inf(-1)) }},
		{"nan", func() (stddec.Decimal, error) { return Factor(math.NaN()) }},
		{"compound overflow", func() (stddec.Decimal, error) { return Compound(1e6, 400) }},
		{"infinite monthly factor", func() (stddec.Decimal, error) {
			return Compound(MonthlyFactor(stddec.New(1, 400)), 1)
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.fn()
			if !errors.Is(err, ErrNotFinite) {
				t.Fatalf("expected ErrNotFinite, got %v", err)
			}
			if !got.IsZero() {
				t.Fatalf("expected zero value on error, got %s", got)
			}
		})
	}
}
