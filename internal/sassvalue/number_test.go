package sassvalue

import "testing"

func TestNumberUnitConversionRoundTrip(t *testing.T) {
	oneInch := NewWithUnit(1, "in")
	ninetySixPixels := NewWithUnit(96, "px")

	if !oneInch.Equal(ninetySixPixels) {
		t.Errorf("1in should equal 96px, got %s vs %s", oneInch.String(), ninetySixPixels.String())
	}
}

func TestNumberEqualityEpsilon(t *testing.T) {
	a, err := NewUnitless(0.1).Add(NewUnitless(0.2))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(NewUnitless(0.3)) {
		t.Errorf("0.1 + 0.2 should equal 0.3 within epsilon, got %s", a.String())
	}
}

func TestNumberAddIncompatibleUnitsFails(t *testing.T) {
	_, err := NewWithUnit(1, "px").Add(NewWithUnit(1, "deg"))
	if err == nil {
		t.Fatal("adding px and deg should fail")
	}
}

func TestNumberMulCancelsUnits(t *testing.T) {
	perPixel := Number{Value: NewUnitless(10).Value, DenominatorUnits: []Unit{"px"}}
	result := perPixel.Mul(NewWithUnit(2, "px"))
	if !result.IsUnitless() {
		t.Errorf("expected (10/px) * 2px to cancel to a unitless number, got %s", result.String())
	}
	if v := result.Value.Value(); v != 20 {
		t.Errorf("expected value 20, got %g", v)
	}
}

func TestNumberCompare(t *testing.T) {
	cmp, err := NewUnitless(1).Compare(NewUnitless(2))
	if err != nil {
		t.Fatal(err)
	}
	if cmp != -1 {
		t.Errorf("1 compared to 2 should be -1, got %d", cmp)
	}
}
