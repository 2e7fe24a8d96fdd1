package service

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"biopubs-ai/internal/storage"
)

// TopWordCount is the number of title words reported by GetStats.
const TopWordCount = 10

// Common English and corpus-specific words excluded from the title word
// histogram.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "in": {}, "to": {}, "a": {}, "for": {},
	"with": {}, "on": {}, "at": {}, "by": {}, "an": {}, "as": {}, "is": {},
	"are": {}, "from": {}, "that": {}, "be": {}, "can": {}, "this": {},
	"into": {}, "using": {}, "during": {}, "their": {}, "over": {},
	"effects": {}, "study": {}, "studies": {}, "analysis": {},
}

// WordCount is a title word and how many titles mention it.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CorpusStats summarizes the stored publication corpus.
type CorpusStats struct {
	TotalPublications int         `json:"total_publications"`
	YearCounts        map[int]int `json:"year_counts"`
	TopWords          []WordCount `json:"top_words"`
}

// StatsService computes corpus statistics over the publication store.
type StatsService struct {
	store storage.PublicationStore
}

// NewStatsService creates a new StatsService.
func NewStatsService(store storage.PublicationStore) *StatsService {
	return &StatsService{store: store}
}

// GetStats returns the publication total, a per-year histogram, and the top
// title words after stopword filtering. Ties are broken alphabetically so
// the output is deterministic.
func (s *StatsService) GetStats(ctx context.Context) (CorpusStats, error) {
	pubs, err := s.store.List(ctx, storage.Filter{})
	if err != nil {
		return CorpusStats{}, WrapError(err, "failed to list publications")
	}

	stats := CorpusStats{
		TotalPublications: len(pubs),
		YearCounts:        make(map[int]int),
	}

	wordCounts := make(map[string]int)
	for _, pub := range pubs {
		if pub.Year != 0 {
			stats.YearCounts[pub.Year]++
		}
		for _, word := range titleWords(pub.Title) {
			wordCounts[word]++
		}
	}

	stats.TopWords = topWords(wordCounts, TopWordCount)
	return stats, nil
}

// titleWords lowercases a title, strips non-letter characters, and drops
// stopwords and single-character tokens.
func titleWords(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := fields[:0]
	for _, word := range fields {
		if len(word) < 2 {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		words = append(words, word)
	}
	return words
}

func topWords(counts map[string]int, limit int) []WordCount {
	words := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
