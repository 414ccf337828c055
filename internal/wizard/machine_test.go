package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"weeklyreport/internal/domain"
)

func TestAdvance_WalksFixedOrder(t *testing.T) {
	expected := []domain.Step{
		domain.StepChooseWeek,
		domain.StepAskRestingHR,
		domain.StepAskSleep,
		domain.StepAskMood,
		domain.StepAskBody,
		domain.StepAskFood,
		domain.StepAskPain,
		domain.StepAskWeekComment,
		domain.StepAskPlanEdits,
		domain.StepAskWishes,
		domain.StepAskQuestions,
		domain.StepDone,
	}

	current := domain.StepChooseWeek
	walked := []domain.Step{current}

	for current != domain.StepDone {
		next, err := advance(context.Background(), current)
		assert.NoError(t, err)
		assert.NotEqual(t, current, next, "wizard must never loop on a step")
		current = next
		walked = append(walked, current)
	}

	assert.Equal(t, expected, walked)
}

func TestAdvance_TerminalAndUnknownStepsFail(t *testing.T) {
	tests := []struct {
		name string
		step domain.Step
	}{
		{name: "done is terminal", step: domain.StepDone},
		{name: "unknown step", step: domain.Step("ask_shoe_size")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := advance(context.Background(), tt.step)
			assert.Error(t, err)
			assert.Equal(t, tt.step, next)
		})
	}
}

func TestSteps_EveryQuestionHasPromptAndApply(t *testing.T) {
	for step, spec := range steps {
		assert.NotEmpty(t, spec.Prompt, "step %s has no prompt", step)
		if step == domain.StepChooseWeek {
			assert.Nil(t, spec.Apply, "choose_week must not accept free text")
			continue
		}
		assert.NotNil(t, spec.Apply, "step %s has no apply func", step)
	}
}
