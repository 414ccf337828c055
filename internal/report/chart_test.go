package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"weeklyreport/internal/domain"
)

func TestChart_NilWhenNothingTracked(t *testing.T) {
	png, err := Chart(domain.Answers{
		Range:     testRange(),
		RestingHR: &domain.Series{NotTracked: true},
		Sleep:     &domain.Series{NotTracked: true},
	})

	assert.NoError(t, err)
	assert.Nil(t, png)
}

func TestChart_RendersTrackedSeries(t *testing.T) {
	tests := []struct {
		name      string
		restingHR *domain.Series
		sleep     *domain.Series
	}{
		{
			name:      "both tracked",
			restingHR: &domain.Series{Values: []float64{45, 45, 46, 48, 49, 43, 45}},
			sleep:     &domain.Series{Values: []float64{6.5, 7.5, 8, 9, 10, 5.5, 4.5}},
		},
		{
			name:      "only resting hr tracked",
			restingHR: &domain.Series{Values: []float64{45, 45, 46, 48, 49, 43, 45}},
			sleep:     &domain.Series{NotTracked: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := Chart(domain.Answers{
				Range:     domain.ComputeWeekRange(domain.WeekCurrent, time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC)),
				RestingHR: tt.restingHR,
				Sleep:     tt.sleep,
			})

			assert.NoError(t, err)
			assert.NotEmpty(t, png)
			// PNG magic bytes
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
		})
	}
}
