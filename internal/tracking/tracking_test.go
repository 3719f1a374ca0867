package tracking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "plain", text: "ABC-123", want: "ABC-123", found: true},
		{name: "branch_name", text: "feature/ABC-42-x", want: "ABC-42", found: true},
		{name: "pr_title", text: "Fix ABC-7", want: "ABC-7", found: true},
		{name: "embedded", text: "hotfix for PROJ-1024 regression", want: "PROJ-1024", found: true},
		{name: "first_of_many", text: "ABC-1 relates to XYZ-2", want: "ABC-1", found: true},
		{name: "lowercase_prefix", text: "feature/abc-42"},
		{name: "no_number", text: "feature/ABC-"},
		{name: "no_dash", text: "ABC123"},
		{name: "empty", text: ""},
		{name: "plain_words", text: "update readme"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
