package jobs

import "testing"

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "low", want: 1},
		{in: "normal", want: 2},
		{in: "high", want: 3},
		{in: "urgent", want: 4},
		{in: "CRITICAL", want: 5},
		{in: "3", want: 3},
		{in: " 5 ", want: 5},
		{in: "9", want: 9},
		{in: "soon", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePriority(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePriority(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParsePriority(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
