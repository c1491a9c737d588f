package hevcimage

import "testing"

func TestIntraModeIsAngular(t *testing.T) {
	cases := []struct {
		m    IntraMode
		want bool
	}{
		{IntraPlanar, false},
		{IntraDC, false},
		{2, true},
		{IntraAngular10, true},
		{IntraAngular26, true},
		{34, true},
	}
	for _, c := range cases {
		if got := c.m.IsAngular(); got != c.want {
			t.Fatalf("IntraMode(%d).IsAngular() = %v, want %v", c.m, got, c.want)
		}
	}
}

func TestIntraModeValid(t *testing.T) {
	if !IntraMode(0).Valid() || !IntraMode(34).Valid() {
		t.Fatal("modes 0 and 34 must be valid")
	}
	if IntraMode(-1).Valid() || IntraMode(35).Valid() {
		t.Fatal("modes -1 and 35 must be invalid")
	}
}
