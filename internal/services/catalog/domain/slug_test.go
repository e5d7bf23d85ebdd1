package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Goiko Grill", "goiko-grill"},
		{"Chamberí", "chamberi"},
		{"  100 Montaditos!  ", "100-montaditos"},
		{"Café & Té", "cafe-te"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
