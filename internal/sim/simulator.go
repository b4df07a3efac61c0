package sim

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/llmgames/twentyq/internal/ai"
	"github.com/llmgames/twentyq/internal/game"
)

var (
	ErrNoConcepts = errors.New("empty concept list")
	ErrNoRounds   = errors.New("round count must be at least 1")
)

// FirstAnswer is the fixed reply to the opening message: every round proceeds
// as if an unseen first question had been answered affirmatively.
const FirstAnswer = "Yes"

type Outcome string

const (
	OutcomeSuccess Outcome = "Success"
	OutcomeFailure Outcome = "Failure"
)

// RoundResult is the immutable outcome of one simulated round.
type RoundResult struct {
	ID            string  `json:"id"`
	Concept       string  `json:"concept"`
	Outcome       Outcome `json:"outcome"`
	QuestionsUsed int     `json:"questionsUsed"`
}

// Runner drives self-play rounds. The responder is a dedicated capability
// role-playing the concept holder, configured independently of the guesser so
// it can answer deterministically while the guesser stays creative.
type Runner struct {
	Responder            ai.Provider
	ResponderModel       string
	ResponderTemperature float64

	// Workers > 1 runs Evaluate rounds on a worker pool, one session per
	// worker. <= 1 runs strictly sequentially.
	Workers int
}

// RunRound plays one fully automated round. The round grants exactly
// MaxQuestions chances: it fails after the MaxQuestions-th non-terminal
// exchange.
func (r *Runner) RunRound(ctx context.Context, session *game.Session, concept string) (RoundResult, error) {
	session.Reset()
	session.SetConcept(concept)

	input := FirstAnswer
	max := session.MaxQuestions()
	questions := 0

	for i := 0; i < max; i++ {
		res, err := session.SubmitTurn(ctx, input)
		if err != nil {
			return RoundResult{}, err
		}
		questions = res.QuestionCount
		if res.Terminal() {
			return RoundResult{
				ID:            uuid.NewString(),
				Concept:       concept,
				Outcome:       OutcomeSuccess,
				QuestionsUsed: res.QuestionCount,
			}, nil
		}
		if i == max-1 {
			break
		}
		question, _ := session.LatestGuesserMessage()
		input, err = r.answer(ctx, concept, question)
		if err != nil {
			return RoundResult{}, err
		}
	}

	return RoundResult{
		ID:            uuid.NewString(),
		Concept:       concept,
		Outcome:       OutcomeFailure,
		QuestionsUsed: questions,
	}, nil
}

func (r *Runner) answer(ctx context.Context, concept, question string) (string, error) {
	prompt := responderPrompt(concept, question)
	msgs := []ai.Message{{Role: ai.RoleUser, Content: prompt}}
	out, err := r.Responder.Complete(ctx, r.ResponderModel, msgs, ai.Options{Temperature: r.ResponderTemperature})
	if err != nil {
		return "", &game.CompletionError{Err: err}
	}
	return NormalizeAnswer(out), nil
}

// NormalizeAnswer collapses free-form responder output into a protocol
// answer. Anything that is not "yes" after trimming, case-insensitively, maps
// to "No": the default is deliberately biased toward negative answers.
func NormalizeAnswer(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "yes") {
		return "Yes"
	}
	return "No"
}

func responderPrompt(concept, question string) string {
	return fmt.Sprintf(`You are playing the '20 Questions' game with another player. Your role is to answer 'Yes' or 'No' to questions based on a given concept or object.

## Concept/Object:
The concept/object for this session is identified as %[1]s.
## Rules for Answering Questions:
Direct Relevance: If the binary question (%[2]s) asked by the player is directly related to the %[1]s, respond truthfully based on the nature of the %[1]s.
- Answer 'YES' if the %[2]s correctly pertains to the %[1]s.
- Answer 'NO' if the %[2]s does not pertain to the %[1]s.
Answer:`, concept, question)
}
