package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "vasya", want: "Vasya"},
		{in: "  VASYA  ", want: "Vasya"},
		{in: "mario   rossi", want: "Mario Rossi"},
		{in: "Already Fine", want: "Already Fine"},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
