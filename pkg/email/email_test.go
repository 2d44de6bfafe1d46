package email

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"jane.doe@example.com", "Jane Doe"},
		{"jane_doe@example.com", "Jane Doe"},
		{"jane@example.com", "Jane"},
		{"j.k.rowling@example.com", "J K Rowling"},
		{"@example.com", "Participant"},
		{"...@example.com", "Participant"},
		{"no-at-sign", "No At Sign"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.address); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.address, got, tc.want)
		}
	}
}
