package doi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		scenario string
		value    string
		expected string
	}{
		{"bare DOI", "10.1234/abcd.5678", "10.1234/abcd.5678"},
		{"https resolver", "https://doi.org/10.1234/abcd.5678", "10.1234/abcd.5678"},
		{"http resolver", "http://doi.org/10.1234/abcd.5678", "10.1234/abcd.5678"},
		{"dx resolver", "https://dx.doi.org/10.1234/abcd.5678", "10.1234/abcd.5678"},
		{"doi prefix", "doi:10.1234/abcd.5678", "10.1234/abcd.5678"},
		{"surrounding whitespace", "  10.1234/abcd.5678\n", "10.1234/abcd.5678"},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.value))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("10.1234/abcd.5678"))
	assert.True(t, IsValid("https://doi.org/10.123456789/x"))
	assert.False(t, IsValid("11.1234/abcd"))
	assert.False(t, IsValid("10.123/too-short-registrant"))
	assert.False(t, IsValid("10.1234/"))
	assert.False(t, IsValid(""))
}

func TestToURL(t *testing.T) {
	url, err := ToURL("10.1234/abcd.5678")
	require.NoError(t, err)
	assert.Equal(t, "https://doi.org/10.1234/abcd.5678", url)

	url, err = ToURL("doi:10.1234/abcd.5678")
	require.NoError(t, err)
	assert.Equal(t, "https://doi.org/10.1234/abcd.5678", url)

	_, err = ToURL("not-a-doi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DOI")
}
