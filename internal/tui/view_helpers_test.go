package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short passes through", in: "São Paulo", max: 20, want: "São Paulo"},
		{name: "long ascii ellipsized", in: "supermercados do interior", max: 10, want: "superme..."},
		{name: "accented cut on rune boundary", in: "Prospecção São João", max: 12, want: "Prospecçã..."},
		{name: "tiny max", in: "ação", max: 2, want: "aç"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "csv", valueOrDash("csv"))
}
