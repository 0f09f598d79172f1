package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last+tag@example.com", "user_1@sub.example.org"}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "plain", "@example.com", "a@b", "a b@example.com"}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f4a2b-9c3d-7e5f-8a1b-2c3d4e5f6a7b"))
	// version 4, not 7
	assert.False(t, IsValidUUID("018f4a2b-9c3d-4e5f-8a1b-2c3d4e5f6a7b"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-06-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("10-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("09:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9am"))
}
