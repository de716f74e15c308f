package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ana Pop", User{Name: "Ana Pop", Email: "ana@example.com"}.DisplayName())
	assert.Equal(t, "ana", User{Email: "ana@example.com"}.DisplayName())
	assert.Equal(t, "not-an-email", User{Email: "not-an-email"}.DisplayName())
}
