package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \t\n"))
	assert.Equal(t, 3, CountWords("wij repareren fietsen"))
	assert.Equal(t, 3, CountWords("  wij   repareren \n fietsen "))
}

func TestCanonicalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"national with leading zero", "0612345678", "+31 6 12345678"},
		{"international with country code", "+31612345678", "+31 6 12345678"},
		{"international without plus", "31612345678", "+31 6 12345678"},
		{"bare subscriber number", "612345678", "+31 6 12345678"},
		{"already formatted", "+31 6 12345678", "+31 6 12345678"},
		{"with separators", "06-1234 5678", "+31 6 12345678"},
		{"landline", "0201234567", "+31 2 01234567"},
		{"unrecognized shape returned unchanged", "abc", "abc"},
		{"too short returned unchanged", "12345", "12345"},
		{"empty returned unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalizePhone(tt.input))
		})
	}
}

func TestIsValidNationalPhone(t *testing.T) {
	assert.True(t, IsValidNationalPhone("0612345678"))
	assert.True(t, IsValidNationalPhone("+31612345678"))
	assert.True(t, IsValidNationalPhone("612345678"))
	assert.True(t, IsValidNationalPhone("06-12345678"))

	assert.False(t, IsValidNationalPhone(""))
	assert.False(t, IsValidNationalPhone("abc"))
	assert.False(t, IsValidNationalPhone("12345"))
	// Subscriber numbers cannot start with zero.
	assert.False(t, IsValidNationalPhone("0012345678"))
}

func TestContainsKeyword(t *testing.T) {
	assert.True(t, ContainsKeyword("Bakkerij in hartje Utrecht", "utrecht"))
	assert.True(t, ContainsKeyword("AMSTERDAM", "amsterdam"))
	assert.False(t, ContainsKeyword("Bakkerij in hartje Utrecht", "rotterdam"))
	assert.False(t, ContainsKeyword("", "utrecht"))
	assert.False(t, ContainsKeyword("Bakkerij", ""))
}

func TestHasCleanSlug(t *testing.T) {
	assert.True(t, HasCleanSlug("bakkerij-jansen-utrecht"))
	assert.True(t, HasCleanSlug("cafe-1e-klas"))
	assert.False(t, HasCleanSlug("bakkerij_jansen"))
	assert.False(t, HasCleanSlug("listing-1029384756"))
	assert.False(t, HasCleanSlug(""))
}
