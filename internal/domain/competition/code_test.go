package competition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Premier League", want: "PL"},
		{in: "La Liga", want: "PD"},
		{in: "Primera Division", want: "PD"},
		{in: "Champions League", want: "CL"},
		{in: "BL1", want: "BL1"},
		{in: " WC ", want: "WC"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCode(tt.in))
		})
	}
}

func TestResolveCode_AliasesAgree(t *testing.T) {
	assert.Equal(t, ResolveCode("La Liga"), ResolveCode("Primera Division"))
}

func TestCodeForSlug(t *testing.T) {
	code, ok := CodeForSlug("la-liga")
	assert.True(t, ok)
	assert.Equal(t, "PD", code)

	code, ok = CodeForSlug("Champions-League")
	assert.True(t, ok)
	assert.Equal(t, "CL", code)

	_, ok = CodeForSlug("eredivisie")
	assert.False(t, ok)
	_, ok = CodeForSlug("x")
	assert.False(t, ok)
}

func TestResolve_AcceptsAnyForm(t *testing.T) {
	assert.Equal(t, "SA", Resolve("serie-a"))
	assert.Equal(t, "SA", Resolve("Serie A"))
	assert.Equal(t, "SA", Resolve("SA"))
}

func TestUpstreamName(t *testing.T) {
	assert.Equal(t, "Primera Division", UpstreamName("pd"))
	assert.Equal(t, "XYZ", UpstreamName("XYZ"))
}

func TestIsQuotaExhausted(t *testing.T) {
	for value, want := range map[string]bool{
		"0":   true,
		"00":  true,
		" 0 ": true,
		"1":   false,
		"":    false,
		"n/a": false,
	} {
		assert.Equal(t, want, IsQuotaExhausted(value), "value %q", value)
	}

	assert.True(t, ResourceResponse{StatusCode: 200, RequestsAvailable: "00"}.QuotaExhausted())
	assert.True(t, ResourceResponse{StatusCode: 429}.QuotaExhausted())
	assert.False(t, ResourceResponse{StatusCode: 404, RequestsAvailable: "7"}.QuotaExhausted())
}
