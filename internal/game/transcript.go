package game

type Speaker string

const (
	SpeakerSystem     Speaker = "system"
	SpeakerGuesser    Speaker = "guesser"
	SpeakerRespondent Speaker = "respondent"
)

// Turn is one message in a round, immutable once appended.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
	Index   int     `json:"index"`
}

// Transcript is the ordered, append-only history of turns for one round.
// Append order is the sole source of truth for question accounting.
type Transcript struct {
	turns []Turn
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(sp Speaker, text string) Turn {
	turn := Turn{Speaker: sp, Text: text, Index: len(t.turns)}
	t.turns = append(t.turns, turn)
	return turn
}

// Turns returns a copy of the history in append order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

func (t *Transcript) Len() int {
	return len(t.turns)
}

func (t *Transcript) CountBySpeaker(sp Speaker) int {
	count := 0
	for _, turn := range t.turns {
		if turn.Speaker == sp {
			count++
		}
	}
	return count
}

// LastBySpeaker returns the most recent turn by sp, in append order.
func (t *Transcript) LastBySpeaker(sp Speaker) (Turn, bool) {
	for i := len(t.turns) - 1; i >= 0; i-- {
		if t.turns[i].Speaker == sp {
			return t.turns[i], true
		}
	}
	return Turn{}, false
}

// Clear empties the transcript in place.
func (t *Transcript) Clear() {
	t.turns = t.turns[:0]
}

// Restore replaces the contents with an externally supplied history, kept
// verbatim so a read back through Turns is identical to the input.
func (t *Transcript) Restore(turns []Turn) {
	t.turns = make([]Turn, len(turns))
	copy(t.turns, turns)
}
