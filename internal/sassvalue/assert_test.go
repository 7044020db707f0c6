package sassvalue

import "testing"

func TestAssertNumberFailureMessage(t *testing.T) {
	_, err := AssertNumber(String{Text: "x", Quoted: true}, "width")
	if err == nil {
		t.Fatal("asserting a string as a number should fail")
	}
	if got := err.Error(); got != "$width: 'x' is not a number" {
		t.Errorf("got %q", got)
	}
}

func TestAssertListNeverFails(t *testing.T) {
	items := AssertList(NewUnitless(1))
	if len(items.Items) != 1 {
		t.Errorf("AssertList of a scalar should return a single-element list")
	}
}

func TestAssertInRange(t *testing.T) {
	if err := AssertInRange(NewUnitless(0.5), 0, 1, "weight"); err != nil {
		t.Errorf("0.5 should be within [0, 1]: %v", err)
	}
	if err := AssertInRange(NewUnitless(1.5), 0, 1, "weight"); err == nil {
		t.Error("1.5 should be outside [0, 1]")
	}
}
