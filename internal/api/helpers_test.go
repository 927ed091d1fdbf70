package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "seo", []string{"seo"}},
		{"trims spaces", "a, b ,c", []string{"a", "b", "c"}},
		{"drops empty segments", "a,,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCSV(tt.raw))
		})
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 0, parseLimit(""))
	assert.Equal(t, 0, parseLimit("abc"))
	assert.Equal(t, 0, parseLimit("-3"))
	assert.Equal(t, 25, parseLimit("25"))
}

func TestCheckLocale(t *testing.T) {
	assert.NoError(t, checkLocale("en-us"))
	assert.NoError(t, checkLocale("fr"))
	assert.Error(t, checkLocale("not!!valid"))
}
