package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetProblemID(data.ProblemID).
		SetLevel(data.Level).
		SetTag(data.Tag).
		SetTier(data.Tier).
		SetQuestionText(data.QuestionText).
		SetHintText(data.HintText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
