package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hydrating Serum 30ml", "hydrating-serum-30ml"},
		{"  Matte  Lipstick  ", "matte-lipstick"},
		{"Eau de Parfum №5", "eau-de-parfum-5"},
		{"---", ""},
		{"UPPER", "upper"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Fatalf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
