package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/inference"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Generator produces model output for a single prompt.
type Generator interface {
	Generate(ctx context.Context, input string, params inference.Params) (string, error)
}

// Keeps each prompt comfortably inside the model's input window.
const maxChunkChars = 1200

var levelPrompts = map[domain.SimplificationLevel]string{
	domain.LevelBasic:        "Simplify this legal text slightly for clarity but keep professional tone:\n",
	domain.LevelIntermediate: "Rephrase this legal contract in simpler, non-technical English:\n",
	domain.LevelAdvanced:     "Rewrite this legal document in very simple, everyday language:\n",
}

// Simplifier rewrites contract text in plainer language by prompting a
// pretrained sequence-to-sequence model, one chunk of sentences at a time.
type Simplifier struct {
	generator Generator
	tokenizer *sentences.DefaultSentenceTokenizer
	logs      domain.SimplificationLogRepository
}

// NewSimplifier creates a Simplifier backed by the given generator.
func NewSimplifier(generator Generator, logs domain.SimplificationLogRepository) (*Simplifier, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &Simplifier{generator: generator, tokenizer: tokenizer, logs: logs}, nil
}

// Simplify rewrites the given text at the requested level. Every request is
// recorded in the simplification log, successful or not; the document text
// itself is never persisted.
func (s *Simplifier) Simplify(ctx context.Context, userID int64, text string, level domain.SimplificationLevel) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text to simplify", domain.ErrInvalidInput)
	}

	prompt, ok := levelPrompts[level]
	if !ok {
		prompt = levelPrompts[domain.LevelIntermediate]
	}

	start := time.Now()
	var out []string
	var genErr error
	for _, chunk := range s.chunk(text) {
		result, err := s.generator.Generate(ctx, prompt+chunk, inference.Params{MaxLength: 500})
		if err != nil {
			genErr = err
			break
		}
		out = append(out, strings.TrimSpace(result))
	}
	simplified := strings.Join(out, " ")

	s.record(ctx, &domain.SimplificationLog{
		UserID:      userID,
		Level:       string(level),
		InputChars:  len(text),
		OutputChars: len(simplified),
		DurationMS:  time.Since(start).Milliseconds(),
		Success:     genErr == nil,
	})

	if genErr != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSimplifyUnavailable, genErr)
	}
	return simplified, nil
}

// chunk splits the text into sentence groups no larger than maxChunkChars.
// A single oversized sentence becomes its own chunk rather than being split
// mid-sentence.
func (s *Simplifier) chunk(text string) []string {
	var chunks []string
	var current strings.Builder

	for _, sentence := range s.tokenizer.Tokenize(text) {
		t := strings.TrimSpace(sentence.Text)
		if t == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(t)+1 > maxChunkChars {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(t)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// Stats returns aggregate counters across all simplification requests.
func (s *Simplifier) Stats(ctx context.Context) (domain.UsageStats, error) {
	return s.logs.Stats(ctx)
}

// RecentByUser returns the user's most recent simplification requests.
func (s *Simplifier) RecentByUser(ctx context.Context, userID int64, limit int) ([]domain.SimplificationLog, error) {
	return s.logs.GetRecentByUser(ctx, userID, limit)
}

func (s *Simplifier) record(ctx context.Context, log *domain.SimplificationLog) {
	if err := s.logs.Create(ctx, log); err != nil {
		slog.Error("record simplification log", "error", err)
	}
}
