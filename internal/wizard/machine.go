package wizard

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"weeklyreport/internal/domain"
)

const eventAdvance = "advance"

// newMachine builds a state machine positioned at current, with one
// advance transition per step-table entry. The table is the single source
// of the wizard order; the FSM enforces that advancing from an unknown or
// terminal step is illegal.
func newMachine(current domain.Step) *fsm.FSM {
	events := make(fsm.Events, 0, len(steps))
	for step, spec := range steps {
		events = append(events, fsm.EventDesc{
			Name: eventAdvance,
			Src:  []string{string(step)},
			Dst:  string(spec.Next),
		})
	}
	return fsm.NewFSM(string(current), events, fsm.Callbacks{})
}

// advance returns the step that follows current in the wizard order
func advance(ctx context.Context, current domain.Step) (domain.Step, error) {
	m := newMachine(current)
	if err := m.Event(ctx, eventAdvance); err != nil {
		return current, fmt.Errorf("no transition from step %q: %w", current, err)
	}
	return domain.Step(m.Current()), nil
}
