package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@acme.test"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("spaces in@mail.test"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone(""))
	assert.True(t, IsValidPhone("+31 20 123 4567"))
	assert.True(t, IsValidPhone("(020) 123-4567"))
	assert.False(t, IsValidPhone("call me maybe"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("s3cret!pw"))
	assert.False(t, IsValidPassword("short1!"))
	assert.False(t, IsValidPassword("nodigits!"))
	assert.False(t, IsValidPassword("nospecial1"))
}
