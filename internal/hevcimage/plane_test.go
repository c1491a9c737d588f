package hevcimage

import "testing"

func TestNewPlaneZeroedAndInBounds(t *testing.T) {
	p := NewPlane(16, 8)
	if p.Stride != 16 || p.Width != 16 || p.Height != 8 {
		t.Fatalf("NewPlane(16,8) = %+v, want Stride=Width=16 Height=8", p)
	}
	if len(p.Pix) != 16*8 {
		t.Fatalf("len(Pix) = %d, want %d", len(p.Pix), 16*8)
	}
	for i, v := range p.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestPlaneAtSetRoundTrip(t *testing.T) {
	p := NewPlane(4, 4)
	p.Set(2, 3, 200)
	if got := p.At(2, 3); got != 200 {
		t.Fatalf("At(2,3) = %d, want 200", got)
	}
	if got := p.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %d, want 0", got)
	}
}

func TestPlanePtrOffset(t *testing.T) {
	p := NewPlane(8, 4)
	p.Pix[p.PtrOffset(3, 1)] = 99
	if got := p.At(3, 1); got != 99 {
		t.Fatalf("At(3,1) after write via PtrOffset = %d, want 99", got)
	}
}

func TestPlaneInBounds(t *testing.T) {
	p := NewPlane(4, 4)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 3, true},
		{4, 0, false},
		{0, 4, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := p.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
