package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rescript/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{
			name:     "go by extension",
			path:     "src/main.go",
			content:  "package main\n",
			expected: "Go",
		},
		{
			name:     "python by extension",
			path:     "translate.py",
			content:  "print('hi')\n",
			expected: "Python",
		},
		{
			name:     "dockerfile by name",
			path:     "deploy/Dockerfile",
			content:  "FROM alpine\n",
			expected: "Dockerfile",
		},
		{
			name:     "shebang without extension",
			path:     "bin/run",
			content:  "#!/usr/bin/env python3\nprint('hello')\n",
			expected: "Python",
		},
		{
			name:     "empty content without hints",
			path:     "notes",
			content:  "",
			expected: langdetect.Unknown,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Detect(testCase.path, []byte(testCase.content))
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestIsBinary(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsBinary([]byte("PK\x03\x04\x00\x00binary")))
	assert.False(t, langdetect.IsBinary([]byte("// 状态变量\n")))
}
