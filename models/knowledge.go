package models

import "encoding/json"

// DefaultLanguage is the language every lookup falls back to.
const DefaultLanguage = "ko"

// SupportedLanguages lists the language tags the chat endpoint accepts.
var SupportedLanguages = []string{"ko", "en", "ja", "zh"}

// KnowledgeEntry is one curated question/answer record from the knowledge store.
type KnowledgeEntry struct {
	ID       string   `bson:"id" json:"id"`
	Question string   `bson:"question" json:"question"`
	Keywords []string `bson:"keywords" json:"keywords"`

	// Answer is the raw stored answer. Administrators may store either a plain
	// string or a serialized per-language object like {"ko": "...", "en": "..."}.
	Answer string `bson:"answer" json:"answer"`

	// Answers is the decoded per-language form of Answer. Populated by
	// Normalize at the repository boundary; empty when Answer is plain text.
	Answers map[string]string `bson:"-" json:"-"`
}

// Normalize decodes a per-language answer blob into Answers. Plain-text
// answers are left as-is.
func (e *KnowledgeEntry) Normalize() {
	if e.Answer == "" {
		return
	}
	var parsed map[string]string
	if err := json.Unmarshal([]byte(e.Answer), &parsed); err != nil {
		return
	}
	if len(parsed) > 0 {
		e.Answers = parsed
	}
}

// AnswerFor resolves the display answer for a language tag, falling back to
// the default language and finally to the raw answer text.
func (e *KnowledgeEntry) AnswerFor(lang string) string {
	if len(e.Answers) > 0 {
		if a, ok := e.Answers[lang]; ok && a != "" {
			return a
		}
		if a, ok := e.Answers[DefaultLanguage]; ok && a != "" {
			return a
		}
	}
	return e.Answer
}

// IsSupportedLanguage reports whether lang is one of the accepted tags.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
