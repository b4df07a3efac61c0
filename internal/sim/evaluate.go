package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/llmgames/twentyq/internal/game"
)

// Summary aggregates a batch of rounds. Recomputed per batch, never
// persisted.
type Summary struct {
	Results          []RoundResult `json:"results"`
	SuccessCount     int           `json:"successCount"`
	AverageQuestions float64       `json:"averageQuestions"`
	SuccessRate      float64       `json:"successRate"`
}

// Evaluate runs numRounds independent rounds over concepts chosen uniformly
// at random with replacement and summarizes the outcomes. The first
// completion failure aborts the whole batch; a partially simulated batch is
// never summarized.
func (r *Runner) Evaluate(ctx context.Context, factory func() *game.Session, concepts []string, numRounds int) (*Summary, error) {
	if len(concepts) == 0 {
		return nil, ErrNoConcepts
	}
	if numRounds < 1 {
		return nil, ErrNoRounds
	}

	picks := make([]string, numRounds)
	for i := range picks {
		picks[i] = concepts[rand.Intn(len(concepts))]
	}

	results := make([]RoundResult, numRounds)
	if r.Workers > 1 {
		if err := r.runParallel(ctx, factory, picks, results); err != nil {
			return nil, err
		}
	} else {
		session := factory()
		for i, concept := range picks {
			res, err := r.RunRound(ctx, session, concept)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
	}

	return summarize(results), nil
}

// runParallel fans rounds out to Workers goroutines. Each worker owns its own
// session from the factory; results land in pre-assigned slots so ordering is
// preserved. The first error cancels the rest of the batch.
func (r *Runner) runParallel(ctx context.Context, factory func() *game.Session, picks []string, results []RoundResult) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	next := make(chan int)
	go func() {
		defer close(next)
		for i := range picks {
			select {
			case next <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	workers := r.Workers
	if workers > len(picks) {
		workers = len(picks)
	}

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session := factory()
			for i := range next {
				res, err := r.RunRound(ctx, session, picks[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					return
				}
				results[i] = res
			}
		}()
	}
	wg.Wait()

	return firstErr
}

func summarize(results []RoundResult) *Summary {
	s := &Summary{Results: results}
	total := 0
	for _, res := range results {
		if res.Outcome == OutcomeSuccess {
			s.SuccessCount++
		}
		total += res.QuestionsUsed
	}
	s.AverageQuestions = float64(total) / float64(len(results))
	s.SuccessRate = float64(s.SuccessCount) / float64(len(results))
	return s
}
