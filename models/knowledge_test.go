package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlainAnswer(t *testing.T) {
	entry := KnowledgeEntry{Answer: "안녕하세요, 정민기입니다."}
	entry.Normalize()

	assert.Empty(t, entry.Answers)
	assert.Equal(t, "안녕하세요, 정민기입니다.", entry.AnswerFor("ko"))
}

func TestNormalizeLanguageMap(t *testing.T) {
	entry := KnowledgeEntry{Answer: `{"ko":"안녕하세요","en":"Hello"}`}
	entry.Normalize()

	assert.Equal(t, "안녕하세요", entry.AnswerFor("ko"))
	assert.Equal(t, "Hello", entry.AnswerFor("en"))
}

func TestAnswerForFallsBackToDefaultLanguage(t *testing.T) {
	entry := KnowledgeEntry{Answer: `{"ko":"안녕하세요"}`}
	entry.Normalize()

	assert.Equal(t, "안녕하세요", entry.AnswerFor("ja"))
}

func TestAnswerForFallsBackToRawAnswer(t *testing.T) {
	// Valid JSON but not a usable map entry for any requested language.
	entry := KnowledgeEntry{Answer: `{"fr":"Bonjour"}`}
	entry.Normalize()

	assert.Equal(t, `{"fr":"Bonjour"}`, entry.AnswerFor("ko"))
}

func TestNormalizeInvalidJSONKeepsRaw(t *testing.T) {
	entry := KnowledgeEntry{Answer: `{"ko": broken`}
	entry.Normalize()

	assert.Empty(t, entry.Answers)
	assert.Equal(t, `{"ko": broken`, entry.AnswerFor("ko"))
}

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, IsSupportedLanguage("ko"))
	assert.True(t, IsSupportedLanguage("zh"))
	assert.False(t, IsSupportedLanguage("fr"))
	assert.False(t, IsSupportedLanguage(""))
}
