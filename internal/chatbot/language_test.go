package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Hindi, ParseLanguage("Hindi"))
	assert.Equal(t, English, ParseLanguage(" english "))
	assert.Equal(t, Hinglish, ParseLanguage("Hinglish"))
	assert.Equal(t, Hinglish, ParseLanguage("klingon"))
	assert.Equal(t, Hinglish, ParseLanguage(""))
}

func TestWelcomeMessage(t *testing.T) {
	assert.Contains(t, WelcomeMessage(English), "Welcome to Sai College")
	assert.Contains(t, WelcomeMessage(Hinglish), "Namaste")
	assert.NotEqual(t, WelcomeMessage(Hindi), WelcomeMessage(Hinglish))
}
