package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips json code fence",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "strips bare code fence",
			input: "```\n[{\"name\":\"Day 1\"}]\n```",
			want:  `[{"name":"Day 1"}]`,
		},
		{
			name:  "clean text is a no-op",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n {\"a\":1} \n ",
			want:  `{"a":1}`,
		},
		{
			name:  "strips every fence occurrence",
			input: "```json\n[1]\n```\n```json\n[2]\n```",
			want:  "[1]\n\n\n[2]",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\":1}\n```",
		"plain text",
		"``` partial",
		"  spaced  ",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		assert.Equal(t, once, twice, "sanitizing twice must equal sanitizing once for %q", input)
	}
}
