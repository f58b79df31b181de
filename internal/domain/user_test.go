package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Level(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
	}

	for _, tt := range tests {
		u := &User{XP: tt.xp}
		assert.Equal(t, tt.want, u.Level(), "xp=%d", tt.xp)
	}
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("0x59a2fB83F0f92480702EDEE8f84c72a1eF44BD9b"))
	assert.True(t, IsAddress(" 0x59a2fb83f0f92480702edee8f84c72a1ef44bd9b "))
	assert.False(t, IsAddress("59a2fB83F0f92480702EDEE8f84c72a1eF44BD9b"))
	assert.False(t, IsAddress("0x59a2"))
	assert.False(t, IsAddress("0xZZa2fB83F0f92480702EDEE8f84c72a1eF44BD9b"))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x59a2fb83f0f92480702edee8f84c72a1ef44bd9b",
		NormalizeAddress(" 0x59a2fB83F0f92480702EDEE8f84c72a1eF44BD9b"),
	)
}
