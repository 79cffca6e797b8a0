// File: services/chat/lookup.go
package chat

import (
	"context"
	"errors"
	"strings"

	"innocurve/models"
	"innocurve/utils"

	"go.uber.org/zap"
)

// ErrNoMatch signals that the knowledge store produced no usable answer and
// the generative fallback should run.
var ErrNoMatch = errors.New("no knowledge match")

// abbreviations maps shorthand visitors use to the full form stored in the
// knowledge base.
var abbreviations = map[string]string{
	"대청세": "대한청년을세계로",
}

// expandSearchTerms builds the recall term set: the literal message, the
// message with known abbreviations substituted, each whitespace token, and
// for any abbreviation present the abbreviation and its expansion as bare
// terms (particles attached to a token would otherwise defeat the
// substring match).
func expandSearchTerms(message string) []string {
	terms := []string{message}

	expanded := message
	for abbr, full := range abbreviations {
		expanded = strings.ReplaceAll(expanded, abbr, full)
	}
	if expanded != message {
		terms = append(terms, expanded)
	}

	terms = append(terms, strings.Fields(message)...)

	for abbr, full := range abbreviations {
		if strings.Contains(message, abbr) {
			terms = append(terms, abbr, full)
		}
	}

	seen := make(map[string]struct{}, len(terms))
	deduped := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}
	return deduped
}

// scoreCandidate applies the weighted heuristic: 2 points per keyword that
// contains any search term, plus 3 when the question contains the full
// original message.
func scoreCandidate(entry models.KnowledgeEntry, terms []string, message string) int {
	score := 0
	for _, keyword := range entry.Keywords {
		lower := strings.ToLower(keyword)
		for _, term := range terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				score += 2
				break
			}
		}
	}
	if strings.Contains(strings.ToLower(entry.Question), strings.ToLower(message)) {
		score += 3
	}
	return score
}

// bestCandidate reduces the retrieved entries to the highest-scoring one.
// Ties keep the first-seen candidate; reduction uses a strict comparison.
func bestCandidate(entries []models.KnowledgeEntry, terms []string, message string) models.KnowledgeEntry {
	best := entries[0]
	if len(entries) == 1 {
		return best
	}
	bestScore := scoreCandidate(best, terms, message)
	for _, entry := range entries[1:] {
		if score := scoreCandidate(entry, terms, message); score > bestScore {
			best = entry
			bestScore = score
		}
	}
	return best
}

// lookupAnswer resolves the message against the knowledge store. Store
// failures are logged and reported as ErrNoMatch so the caller degrades to
// the generative fallback.
func (s *DefaultChatService) lookupAnswer(ctx context.Context, message, lang string) (string, error) {
	terms := expandSearchTerms(message)

	entries, err := s.Repo.Search(ctx, terms)
	if err != nil {
		utils.GetLogger().Error("knowledge store search failed",
			zap.String("message", message), zap.Error(err))
		return "", ErrNoMatch
	}
	if len(entries) == 0 {
		return "", ErrNoMatch
	}

	best := bestCandidate(entries, terms, message)
	answer := best.AnswerFor(lang)
	if answer == "" {
		utils.GetLogger().Warn("knowledge entry resolved to empty answer",
			zap.String("entryId", best.ID), zap.String("language", lang))
		return "", ErrNoMatch
	}
	return answer, nil
}
