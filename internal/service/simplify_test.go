package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/inference"
	"github.com/clearclause/clearclause/internal/service"
)

// fakeGenerator returns canned output and records the prompts it received.
type fakeGenerator struct {
	prompts []string
	output  string
	err     error
}

func (f *fakeGenerator) Generate(ctx context.Context, input string, params inference.Params) (string, error) {
	f.prompts = append(f.prompts, input)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func newTestSimplifier(t *testing.T, gen service.Generator) (*service.Simplifier, *domain.User, domain.SimplificationLogRepository) {
	t.Helper()
	_, db := newTestAuthService(t)
	user := &domain.User{Name: "Doc User", Email: "doc@example.com", PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	logs := db.SimplificationLogs()
	simplifier, err := service.NewSimplifier(gen, logs)
	if err != nil {
		t.Fatalf("NewSimplifier: %v", err)
	}
	return simplifier, user, logs
}

func TestSimplifier_Simplify(t *testing.T) {
	gen := &fakeGenerator{output: "The tenant pays rent every month."}
	simplifier, user, logs := newTestSimplifier(t, gen)
	ctx := context.Background()

	input := "The lessee shall remit rental payments on a monthly basis."
	out, err := simplifier.Simplify(ctx, user.ID, input, domain.LevelIntermediate)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if out != "The tenant pays rent every month." {
		t.Fatalf("unexpected output: %q", out)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "non-technical English") {
		t.Fatalf("intermediate prompt not used: %q", gen.prompts[0])
	}
	if !strings.Contains(gen.prompts[0], input) {
		t.Fatal("prompt does not contain the source text")
	}

	// The request is recorded.
	recent, err := logs.GetRecentByUser(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("GetRecentByUser: %v", err)
	}
	if len(recent) != 1 || !recent[0].Success {
		t.Fatalf("expected one successful log entry, got %+v", recent)
	}
	if recent[0].InputChars != len(input) {
		t.Fatalf("expected input chars %d, got %d", len(input), recent[0].InputChars)
	}
}

func TestSimplifier_LevelPrompts(t *testing.T) {
	tests := []struct {
		level domain.SimplificationLevel
		want  string
	}{
		{domain.LevelBasic, "professional tone"},
		{domain.LevelIntermediate, "non-technical English"},
		{domain.LevelAdvanced, "everyday language"},
	}

	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			gen := &fakeGenerator{output: "ok"}
			simplifier, user, _ := newTestSimplifier(t, gen)

			if _, err := simplifier.Simplify(context.Background(), user.ID, "Some clause.", tc.level); err != nil {
				t.Fatalf("Simplify: %v", err)
			}
			if !strings.Contains(gen.prompts[0], tc.want) {
				t.Fatalf("expected %q in prompt, got %q", tc.want, gen.prompts[0])
			}
		})
	}
}

func TestSimplifier_ChunksLongText(t *testing.T) {
	gen := &fakeGenerator{output: "short"}
	simplifier, user, _ := newTestSimplifier(t, gen)

	// Build a text well over one chunk: 60 sentences of ~50 chars.
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&sb, "The party of the first part waives provision %d. ", i)
	}

	out, err := simplifier.Simplify(context.Background(), user.ID, sb.String(), domain.LevelBasic)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}

	if len(gen.prompts) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(gen.prompts))
	}
	// One output per chunk, joined with spaces.
	if got := strings.Count(out, "short"); got != len(gen.prompts) {
		t.Fatalf("expected %d joined outputs, got %d", len(gen.prompts), got)
	}
}

func TestSimplifier_EmptyInput(t *testing.T) {
	simplifier, user, _ := newTestSimplifier(t, &fakeGenerator{output: "x"})

	_, err := simplifier.Simplify(context.Background(), user.ID, "   \n ", domain.LevelBasic)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSimplifier_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model is loading")}
	simplifier, user, logs := newTestSimplifier(t, gen)
	ctx := context.Background()

	_, err := simplifier.Simplify(ctx, user.ID, "Some clause.", domain.LevelAdvanced)
	if !errors.Is(err, domain.ErrSimplifyUnavailable) {
		t.Fatalf("expected ErrSimplifyUnavailable, got %v", err)
	}

	// The failure is still recorded.
	recent, err := logs.GetRecentByUser(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("GetRecentByUser: %v", err)
	}
	if len(recent) != 1 || recent[0].Success {
		t.Fatalf("expected one failed log entry, got %+v", recent)
	}
}
