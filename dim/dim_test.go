package dim

import "testing"

func TestFromRealToRealRoundTrip(t *testing.T) {
	for _, mm := range []float64{0, 1, 1.5, -2.25, 100.001, -0.001} {
		d := FromReal(mm)
		got := ToReal(d)
		if diff := got - mm; diff > 0.0005 || diff < -0.0005 {
			t.Fatalf("FromReal(%v)->ToReal round trip = %v, want ~%v", mm, got, mm)
		}
	}
}

func TestFormatTrimsTrailingZerosAndDot(t *testing.T) {
	cases := []struct {
		v      Dim
		places int
		want   string
	}{
		{FromReal(1.0), 3, "1"},
		{FromReal(1.5), 3, "1.5"},
		{FromReal(1.25), 3, "1.25"},
		{FromReal(-1.25), 3, "-1.25"},
		{0, 3, "0"},
		{FromReal(0.001), 3, "0.001"},
	}
	for _, c := range cases {
		got := Format(c.v, c.places)
		if got != c.want {
			t.Errorf("Format(%d, %d) = %q, want %q", c.v, c.places, got, c.want)
		}
	}
}

func TestFormatZeroPlaces(t *testing.T) {
	got := Format(FromReal(42.75), 0)
	if got != "42" {
		t.Fatalf("Format with places=0 = %q, want %q", got, "42")
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 {
		t.Fatalf("Abs wrong")
	}
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Fatalf("Min/Max wrong")
	}
}
