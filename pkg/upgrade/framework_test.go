package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFramework(t *testing.T) {
	tests := []struct {
		input     string
		want      Framework
		supported bool
	}{
		{"nextjs", FrameworkNextJS, true},
		{"Next.JS", FrameworkNextJS, true},
		{"next js", FrameworkNextJS, true},
		{"NEXT-JS", FrameworkNextJS, true},
		{"Angular", FrameworkAngular, true},
		{"angular!", FrameworkAngular, true},
		{"svelte", Framework("svelte"), false},
		{"", Framework(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFramework(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.supported, ok)
		})
	}
}

func TestFrameworkName(t *testing.T) {
	assert.Equal(t, "Next.js", FrameworkNextJS.Name())
	assert.Equal(t, "Angular", FrameworkAngular.Name())
	assert.Equal(t, "Svelte", Framework("svelte").Name())
}

func TestFrameworkSupported(t *testing.T) {
	assert.True(t, FrameworkNextJS.Supported())
	assert.True(t, FrameworkAngular.Supported())
	assert.False(t, Framework("svelte").Supported())
}
