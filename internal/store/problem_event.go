package store

import (
	"context"
	"fmt"

	"github.com/misaki/kumora/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendProblem(ctx context.Context, data ProblemEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProblemEvent.Create().
		SetSequence(seqNum).
		SetProblemID(data.ProblemID).
		SetLevel(data.Level).
		SetWorksheet(data.Worksheet).
		SetTopic(data.Topic).
		SetSubtype(data.Subtype).
		SetQuestionText(data.QuestionText).
		SetAnswer(data.Answer).
		SetAnswerKind(data.AnswerKind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save problem event: %w", err)
	}
	return nil
}
