package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// ReadabilityScores holds the readability metrics shown on the analysis page.
type ReadabilityScores struct {
	FleschKincaidGrade float64
	GunningFogIndex    float64
	SentenceCount      int
	WordCount          int
}

// Analyzer computes readability metrics and a cleaned-text preview.
type Analyzer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() (*Analyzer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &Analyzer{tokenizer: tokenizer}, nil
}

// Scores computes the Flesch-Kincaid grade level and the Gunning fog index
// for the given text.
func (a *Analyzer) Scores(text string) (ReadabilityScores, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ReadabilityScores{}, fmt.Errorf("%w: no text to analyze", domain.ErrInvalidInput)
	}

	sentenceCount := 0
	for _, s := range a.tokenizer.Tokenize(text) {
		if strings.TrimSpace(s.Text) != "" {
			sentenceCount++
		}
	}
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	words := tokenizeWords(text)
	if len(words) == 0 {
		return ReadabilityScores{}, fmt.Errorf("%w: no words to analyze", domain.ErrInvalidInput)
	}

	syllables := 0
	complexWords := 0
	for _, w := range words {
		n := countSyllables(w)
		syllables += n
		if n >= 3 {
			complexWords++
		}
	}

	wordsPerSentence := float64(len(words)) / float64(sentenceCount)
	syllablesPerWord := float64(syllables) / float64(len(words))
	complexRatio := float64(complexWords) / float64(len(words))

	return ReadabilityScores{
		FleschKincaidGrade: 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59,
		GunningFogIndex:    0.4 * (wordsPerSentence + 100*complexRatio),
		SentenceCount:      sentenceCount,
		WordCount:          len(words),
	}, nil
}

// Clean lowercases the text, strips punctuation, and drops common English
// stopwords, mirroring the preprocessed-text preview of the analysis page.
func (a *Analyzer) Clean(text string) string {
	var kept []string
	for _, w := range tokenizeWords(text) {
		w = strings.ToLower(w)
		if !stopwords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// tokenizeWords splits text into words, keeping only letters and digits.
func tokenizeWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// countSyllables estimates syllables by counting vowel groups, with the
// usual silent-e adjustment. Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "he": true, "her": true, "his": true, "if": true, "in": true,
	"is": true, "it": true, "its": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "shall": true, "she": true, "so": true, "such": true,
	"that": true, "the": true, "their": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "to": true, "was": true,
	"were": true, "will": true, "with": true, "you": true, "your": true,
}
