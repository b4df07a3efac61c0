package game

import (
	"testing"
)

func TestTranscriptAppendOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(SpeakerGuesser, "first")
	tr.Append(SpeakerRespondent, "second")
	tr.Append(SpeakerGuesser, "third")

	turns := tr.Turns()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		if turn.Index != i {
			t.Fatalf("expected index %d, got %d", i, turn.Index)
		}
	}
	if turns[0].Text != "first" || turns[1].Text != "second" || turns[2].Text != "third" {
		t.Fatalf("turns out of order: %v", turns)
	}
}

func TestTranscriptTurnsReturnsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(SpeakerGuesser, "original")

	turns := tr.Turns()
	turns[0].Text = "mutated"

	if tr.Turns()[0].Text != "original" {
		t.Fatal("mutating the returned slice should not affect the transcript")
	}
}

func TestTranscriptCountBySpeaker(t *testing.T) {
	tr := NewTranscript()
	tr.Append(SpeakerGuesser, "a")
	tr.Append(SpeakerRespondent, "b")
	tr.Append(SpeakerGuesser, "c")

	if got := tr.CountBySpeaker(SpeakerGuesser); got != 2 {
		t.Fatalf("expected 2 guesser turns, got %d", got)
	}
	if got := tr.CountBySpeaker(SpeakerRespondent); got != 1 {
		t.Fatalf("expected 1 respondent turn, got %d", got)
	}
	if got := tr.CountBySpeaker(SpeakerSystem); got != 0 {
		t.Fatalf("expected 0 system turns, got %d", got)
	}
}

func TestTranscriptLastBySpeaker(t *testing.T) {
	tr := NewTranscript()

	if _, ok := tr.LastBySpeaker(SpeakerGuesser); ok {
		t.Fatal("empty transcript should have no last guesser turn")
	}

	tr.Append(SpeakerGuesser, "older")
	tr.Append(SpeakerRespondent, "answer")
	tr.Append(SpeakerGuesser, "newer")

	turn, ok := tr.LastBySpeaker(SpeakerGuesser)
	if !ok {
		t.Fatal("expected a last guesser turn")
	}
	if turn.Text != "newer" {
		t.Fatalf("expected newer, got %s", turn.Text)
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript()
	tr.Append(SpeakerGuesser, "a")
	tr.Append(SpeakerRespondent, "b")

	tr.Clear()
	if tr.Len() != 0 {
		t.Fatalf("expected empty transcript after clear, got %d turns", tr.Len())
	}

	turn := tr.Append(SpeakerGuesser, "again")
	if turn.Index != 0 {
		t.Fatalf("expected index 0 after clear, got %d", turn.Index)
	}
}

func TestTranscriptRestoreRoundTrip(t *testing.T) {
	supplied := []Turn{
		{Speaker: SpeakerGuesser, Text: OpeningMessage, Index: 0},
		{Speaker: SpeakerRespondent, Text: "Yes", Index: 1},
		{Speaker: SpeakerGuesser, Text: "Is it alive?", Index: 2},
	}

	tr := NewTranscript()
	tr.Append(SpeakerGuesser, "stale")
	tr.Restore(supplied)

	got := tr.Turns()
	if len(got) != len(supplied) {
		t.Fatalf("expected %d turns, got %d", len(supplied), len(got))
	}
	for i := range supplied {
		if got[i] != supplied[i] {
			t.Fatalf("turn %d differs: expected %v, got %v", i, supplied[i], got[i])
		}
	}
}
