package accidents

import "testing"

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusOpen, StatusReviewed, true},
		{StatusReviewed, StatusClosed, true},

		// closing skips review
		{StatusOpen, StatusClosed, false},
		{StatusReviewed, StatusOpen, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusReviewed, false},
		{StatusOpen, StatusOpen, false},
		{"bogus", StatusClosed, false},
	}
	for _, tt := range tests {
		if got := ValidTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
