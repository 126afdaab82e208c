package meta

import (
	"os"
	"testing"
)

func TestExpandEnvExpr(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		input    string
		expected string
	}{
		{
			name:     "no expressions",
			input:    "file:///models/model.json",
			expected: "file:///models/model.json",
		},
		{
			name:     "single expression",
			env:      map[string]string{"MODEL_HOME": "/opt/models"},
			input:    "${env.MODEL_HOME}/model.json",
			expected: "/opt/models/model.json",
		},
		{
			name:     "repeated expressions",
			env:      map[string]string{"A": "1", "B": "2"},
			input:    "${env.A}-${env.B}-${env.A}",
			expected: "1-2-1",
		},
		{
			name:     "unset variable becomes empty",
			input:    "prefix-${env.UNSET_VAR}-suffix",
			expected: "prefix--suffix",
		},
		{
			name:     "missing closing brace stays literal",
			env:      map[string]string{"X": "x"},
			input:    "a ${env.X and ${env.Y} b",
			expected: "a ${env.X and  b",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"MODEL_HOME", "A", "B", "X", "Y", "UNSET_VAR"} {
				os.Unsetenv(key)
			}
			for k, v := range tc.env {
				os.Setenv(k, v)
			}
			if got := expandEnvExpr(tc.input); got != tc.expected {
				t.Errorf("expandEnvExpr(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}
