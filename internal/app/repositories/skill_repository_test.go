package repositories

import "testing"

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain prefix", "Gui", "Gui"},
		{"percent wildcard", "%", `\%`},
		{"underscore wildcard", "C_", `C\_`},
		{"backslash", `C\`, `C\\`},
		{"mixed", `10%_off\`, `10\%\_off\\`},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := likeEscaper.Replace(tc.input); got != tc.want {
				t.Errorf("Replace(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
