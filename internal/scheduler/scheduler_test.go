package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"weeklyreport/internal/testutil"
)

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastReminder(ctx context.Context) {}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		tz          string
		expectError bool
	}{
		{
			name: "sunday evening in amsterdam",
			spec: "0 20 * * 0",
			tz:   "Europe/Amsterdam",
		},
		{
			name: "utc works",
			spec: "30 9 * * 1",
			tz:   "UTC",
		},
		{
			name:        "bad cron spec",
			spec:        "not a cron spec",
			tz:          "UTC",
			expectError: true,
		},
		{
			name:        "six field spec rejected",
			spec:        "0 0 20 * * 0",
			tz:          "UTC",
			expectError: true,
		},
		{
			name:        "bad timezone",
			spec:        "0 20 * * 0",
			tz:          "Mars/Olympus_Mons",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.spec, tt.tz, nopBroadcaster{}, testutil.NewTestLogger())

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := New("0 20 * * 0", "UTC", nopBroadcaster{}, testutil.NewTestLogger())
	assert.NoError(t, err)

	s.Start()
	assert.NotPanics(t, s.Stop)
}
