package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/llmgames/twentyq/internal/ai"
)

var ErrNotInitialized = errors.New("session not initialized")

// CompletionError wraps a failed completion call. The session never retries
// or swallows it; whether to retry the turn or abort is caller policy.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

type Config struct {
	MaxQuestions int
	SystemPrompt string
	VictoryToken string
	Model        string
	Temperature  float64
}

const (
	DefaultMaxQuestions = 20
	DefaultVictoryToken = "Hooray"
)

// Session encapsulates one instance of the guessing game: the turn protocol,
// termination detection, question accounting and reset semantics. It owns its
// transcript; the provider is a shared collaborator.
type Session struct {
	ID string

	provider   ai.Provider
	cfg        Config
	transcript *Transcript
	concept    string
}

// NewSession seeds a session with the fixed opening guesser turn. Zero-value
// config fields fall back to defaults.
func NewSession(provider ai.Provider, cfg Config) *Session {
	if cfg.MaxQuestions == 0 {
		cfg.MaxQuestions = DefaultMaxQuestions
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.VictoryToken == "" {
		cfg.VictoryToken = DefaultVictoryToken
	}
	s := &Session{
		ID:         uuid.NewString(),
		provider:   provider,
		cfg:        cfg,
		transcript: NewTranscript(),
	}
	s.transcript.Append(SpeakerGuesser, OpeningMessage)
	return s
}

// TurnResult is the outcome of one exchange. TokenMatch and ConceptMatch are
// exposed separately: the token rule has known false positives ("hooraygun")
// and the substring rule fires only in the concept-aware self-play variant.
type TurnResult struct {
	Response      string
	QuestionCount int
	TokenMatch    bool
	ConceptMatch  bool
}

func (r TurnResult) Terminal() bool {
	return r.TokenMatch || r.ConceptMatch
}

// SubmitTurn appends the respondent input, asks the provider for the next
// guesser message and appends it. On provider failure the respondent turn is
// kept but no guesser turn is added, so the caller may retry the turn.
// Win/lose framing against MaxQuestions is the caller's decision.
func (s *Session) SubmitTurn(ctx context.Context, input string) (TurnResult, error) {
	if s.transcript.Len() == 0 {
		return TurnResult{}, ErrNotInitialized
	}
	s.transcript.Append(SpeakerRespondent, input)

	response, err := s.provider.Complete(ctx, s.cfg.Model, s.messages(), ai.Options{Temperature: s.cfg.Temperature})
	if err != nil {
		return TurnResult{}, &CompletionError{Err: err}
	}
	s.transcript.Append(SpeakerGuesser, response)

	return TurnResult{
		Response:      response,
		QuestionCount: s.QuestionCount(),
		TokenMatch:    matchesToken(response, s.cfg.VictoryToken),
		ConceptMatch:  matchesConcept(response, s.concept),
	}, nil
}

// QuestionCount is the number of guesser turns minus the opening message.
func (s *Session) QuestionCount() int {
	count := s.transcript.CountBySpeaker(SpeakerGuesser) - 1
	if count < 0 {
		return 0
	}
	return count
}

// LatestGuesserMessage returns the text of the most recent guesser turn.
func (s *Session) LatestGuesserMessage() (string, bool) {
	turn, ok := s.transcript.LastBySpeaker(SpeakerGuesser)
	if !ok {
		return "", false
	}
	return turn.Text, true
}

// SetConcept enables the concept-aware termination variant used in self-play.
// An empty concept disables the substring signal.
func (s *Session) SetConcept(concept string) {
	s.concept = concept
}

// Reset clears the transcript and reseeds the opening message. Provider,
// config and concept are retained; the result is observably identical to a
// freshly created session.
func (s *Session) Reset() {
	s.transcript.Clear()
	s.transcript.Append(SpeakerGuesser, OpeningMessage)
}

// Transcript returns the current history in append order, for external
// persistence.
func (s *Session) Transcript() []Turn {
	return s.transcript.Turns()
}

// Restore adopts an externally supplied transcript verbatim, resuming a
// previously persisted round.
func (s *Session) Restore(turns []Turn) {
	s.transcript.Restore(turns)
}

func (s *Session) MaxQuestions() int {
	return s.cfg.MaxQuestions
}

func (s *Session) messages() []ai.Message {
	turns := s.transcript.Turns()
	msgs := make([]ai.Message, 0, len(turns)+1)
	msgs = append(msgs, ai.Message{Role: ai.RoleSystem, Content: s.cfg.SystemPrompt})
	for _, turn := range turns {
		msgs = append(msgs, ai.Message{Role: roleFor(turn.Speaker), Content: turn.Text})
	}
	return msgs
}

func roleFor(sp Speaker) ai.Role {
	switch sp {
	case SpeakerGuesser:
		return ai.RoleAssistant
	case SpeakerSystem:
		return ai.RoleSystem
	default:
		return ai.RoleUser
	}
}

// matchesToken applies the naive prefix rule. "I think it's a hooraygun" is a
// known false positive and stays that way on purpose.
func matchesToken(response, token string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(response)), strings.ToLower(token))
}

func matchesConcept(response, concept string) bool {
	if concept == "" {
		return false
	}
	return strings.Contains(strings.ToLower(response), strings.ToLower(concept))
}
