package chatbot

import "strings"

// Language is the reply language a visitor selected for their session.
type Language string

const (
	Hindi    Language = "Hindi"
	English  Language = "English"
	Hinglish Language = "Hinglish"
)

// DefaultLanguage applies until a visitor picks one explicitly.
const DefaultLanguage = Hinglish

// ParseLanguage maps a client supplied value onto a known language,
// falling back to the default for anything unrecognised.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hindi":
		return Hindi
	case "english":
		return English
	default:
		return Hinglish
	}
}

// WelcomeMessage is the reply sent when a language is selected.
func WelcomeMessage(lang Language) string {
	switch lang {
	case Hindi:
		return "🙏 नमस्ते! साई कॉलेज में स्वागत है। मैं आपकी मदद कर सकता हूं।"
	case English:
		return "👋 Hello! Welcome to Sai College. How can I help you?"
	default:
		return "🙏 Namaste! Sai College me swagat hai. Kaise madad karu?"
	}
}
