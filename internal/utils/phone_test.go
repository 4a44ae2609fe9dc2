package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "79001234567", "79001234567"},
		{"formatted", "+7 (900) 123-45-67", "79001234567"},
		{"without country code", "900 123 45 67", "79001234567"},
		{"leading eight", "89001234567", "789001234567"},
		{"short", "12-34", "71234"},
		{"no digits", "abc", "7"},
		{"empty", "", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"", "7", "+7 900 123-45-67", "9001234567", "89001234567", "phone: 8 (800) 555 35 35", "12345"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
		assert.True(t, len(once) > 0 && once[0] == '7', "input %q", in)
	}
}

func TestNormalizePhone_TenDigitsBecomeCanonical(t *testing.T) {
	for _, in := range []string{"9001234567", "(900) 123 45 67", "+79001234567"} {
		got := NormalizePhone(in)
		assert.Len(t, got, 11)
		assert.True(t, IsCanonicalPhone(got))
	}
}

func TestIsCanonicalPhone(t *testing.T) {
	assert.True(t, IsCanonicalPhone("79001234567"))
	assert.False(t, IsCanonicalPhone("89001234567"))
	assert.False(t, IsCanonicalPhone("7900123456"))
	assert.False(t, IsCanonicalPhone("790012345678"))
	assert.False(t, IsCanonicalPhone("+79001234567"))
	assert.False(t, IsCanonicalPhone(""))
}
