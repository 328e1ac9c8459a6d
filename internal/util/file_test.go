package util

import "testing"

func TestBuildStoredFilename(t *testing.T) {
	tests := []struct {
		name             string
		id               string
		originalFilename string
		want             string
	}{
		{
			name:             "plain filename",
			id:               "42ab",
			originalFilename: "notes.pdf",
			want:             "42ab_notes.pdf",
		},
		{
			name:             "path components are stripped",
			id:               "42ab",
			originalFilename: "../secrets/notes.pdf",
			want:             "42ab_notes.pdf",
		},
		{
			name:             "spaces survive",
			id:               "42ab",
			originalFilename: "my report.pdf",
			want:             "42ab_my report.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildStoredFilename(tt.id, tt.originalFilename); got != tt.want {
				t.Errorf("BuildStoredFilename(%q, %q) = %q, want %q", tt.id, tt.originalFilename, got, tt.want)
			}
		})
	}
}
