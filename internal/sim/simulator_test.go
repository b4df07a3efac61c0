package sim

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/llmgames/twentyq/internal/ai"
	"github.com/llmgames/twentyq/internal/game"
)

// stubProvider replays a fixed list of responses, cycling when exhausted.
type stubProvider struct {
	replies  []string
	err      error
	calls    int
	lastMsgs []ai.Message
	lastOpts ai.Options
}

func (p *stubProvider) Complete(_ context.Context, _ string, msgs []ai.Message, opts ai.Options) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.lastMsgs = msgs
	p.lastOpts = opts
	reply := p.replies[p.calls%len(p.replies)]
	p.calls++
	return reply, nil
}

func newTestSession(guesser ai.Provider, maxQuestions int) *game.Session {
	return game.NewSession(guesser, game.Config{MaxQuestions: maxQuestions})
}

func TestRunRoundFailsExactlyAtBudget(t *testing.T) {
	guesser := &stubProvider{replies: []string{"Is it bigger than a breadbox?"}}
	responder := &stubProvider{replies: []string{"No"}}
	runner := &Runner{Responder: responder}

	session := newTestSession(guesser, 3)
	result, err := runner.RunRound(context.Background(), session, "toaster")
	if err != nil {
		t.Fatalf("round failed: %v", err)
	}

	if result.Outcome != OutcomeFailure {
		t.Fatalf("expected Failure, got %s", result.Outcome)
	}
	if result.QuestionsUsed != 3 {
		t.Fatalf("expected exactly 3 questions used, got %d", result.QuestionsUsed)
	}
	if guesser.calls != 3 {
		t.Fatalf("expected exactly 3 guesser calls, got %d", guesser.calls)
	}
	// no responder call after the final exchange
	if responder.calls != 2 {
		t.Fatalf("expected 2 responder calls, got %d", responder.calls)
	}
	if result.Concept != "toaster" {
		t.Fatalf("expected concept toaster, got %s", result.Concept)
	}
}

func TestRunRoundImmediateVictory(t *testing.T) {
	guesser := &stubProvider{replies: []string{"Hooray! It was easy."}}
	responder := &stubProvider{replies: []string{"No"}}
	runner := &Runner{Responder: responder}

	session := newTestSession(guesser, 20)
	result, err := runner.RunRound(context.Background(), session, "apple")
	if err != nil {
		t.Fatalf("round failed: %v", err)
	}

	if result.Outcome != OutcomeSuccess {
		t.Fatalf("expected Success, got %s", result.Outcome)
	}
	if result.QuestionsUsed != 1 {
		t.Fatalf("expected 1 question used, got %d", result.QuestionsUsed)
	}
	if responder.calls != 0 {
		t.Fatalf("responder should not be called on an immediate win, got %d calls", responder.calls)
	}
	if result.ID == "" {
		t.Fatal("round result ID should not be empty")
	}
}

func TestRunRoundConceptMentionTerminates(t *testing.T) {
	// the guesser names the concept without emitting the victory token
	guesser := &stubProvider{replies: []string{"Could it be an apple, perhaps?"}}
	responder := &stubProvider{replies: []string{"No"}}
	runner := &Runner{Responder: responder}

	session := newTestSession(guesser, 20)
	result, err := runner.RunRound(context.Background(), session, "apple")
	if err != nil {
		t.Fatalf("round failed: %v", err)
	}

	if result.Outcome != OutcomeSuccess {
		t.Fatalf("expected Success via concept mention, got %s", result.Outcome)
	}
	if result.QuestionsUsed != 1 {
		t.Fatalf("expected 1 question used, got %d", result.QuestionsUsed)
	}
}

func TestRunRoundResetsBetweenRounds(t *testing.T) {
	guesser := &stubProvider{replies: []string{"Hooray!"}}
	responder := &stubProvider{replies: []string{"No"}}
	runner := &Runner{Responder: responder}

	session := newTestSession(guesser, 20)
	for i := 0; i < 3; i++ {
		result, err := runner.RunRound(context.Background(), session, "apple")
		if err != nil {
			t.Fatalf("round %d failed: %v", i, err)
		}
		if result.QuestionsUsed != 1 {
			t.Fatalf("round %d: expected 1 question used, got %d (state leaked between rounds)", i, result.QuestionsUsed)
		}
	}
}

func TestRunRoundResponderPromptAndSettings(t *testing.T) {
	guesser := &stubProvider{replies: []string{"Does it have wheels?"}}
	responder := &stubProvider{replies: []string{"yes"}}
	runner := &Runner{Responder: responder, ResponderModel: "answer-model", ResponderTemperature: 0}

	session := newTestSession(guesser, 2)
	if _, err := runner.RunRound(context.Background(), session, "bicycle"); err != nil {
		t.Fatalf("round failed: %v", err)
	}

	if responder.calls != 1 {
		t.Fatalf("expected 1 responder call, got %d", responder.calls)
	}
	if len(responder.lastMsgs) != 1 {
		t.Fatalf("expected a single-message responder prompt, got %d messages", len(responder.lastMsgs))
	}
	prompt := responder.lastMsgs[0].Content
	if !strings.Contains(prompt, "bicycle") {
		t.Fatalf("responder prompt should carry the concept, got %q", prompt)
	}
	if !strings.Contains(prompt, "Does it have wheels?") {
		t.Fatalf("responder prompt should carry the latest question, got %q", prompt)
	}
	if responder.lastOpts.Temperature != 0 {
		t.Fatalf("expected responder temperature 0, got %f", responder.lastOpts.Temperature)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"yes", "Yes"},
		{"YES", "Yes"},
		{" Yes ", "Yes"},
		{"yes.", "No"},
		{"Yes, definitely", "No"},
		{"Nope", "No"},
		{"maybe", "No"},
		{"", "No"},
	}
	for _, c := range cases {
		if got := NormalizeAnswer(c.in); got != c.want {
			t.Fatalf("NormalizeAnswer(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestRunRoundGuesserErrorPropagates(t *testing.T) {
	base := errors.New("boom")
	guesser := &stubProvider{err: base}
	runner := &Runner{Responder: &stubProvider{replies: []string{"No"}}}

	session := newTestSession(guesser, 5)
	_, err := runner.RunRound(context.Background(), session, "apple")

	var ce *game.CompletionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatal("error should unwrap to the provider failure")
	}
}

func TestRunRoundResponderErrorPropagates(t *testing.T) {
	guesser := &stubProvider{replies: []string{"Is it alive?"}}
	responder := &stubProvider{err: errors.New("timeout")}
	runner := &Runner{Responder: responder}

	session := newTestSession(guesser, 5)
	_, err := runner.RunRound(context.Background(), session, "apple")

	var ce *game.CompletionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompletionError from responder failure, got %v", err)
	}
}
