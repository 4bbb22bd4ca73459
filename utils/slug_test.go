package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces and punctuation", "Hello World!", "hello-world"},
		{"han characters preserved", "React 入門", "react-入門"},
		{"repeated separators collapse", "a--b", "a-b"},
		{"leading and trailing stripped", "  CSS  ", "css"},
		{"all han", "前端開發", "前端開發"},
		{"digits kept", "Vue 3 Tips", "vue-3-tips"},
		{"only separators", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	assert.Equal(t, GenerateSlug("React 入門"), GenerateSlug("React 入門"))
}
