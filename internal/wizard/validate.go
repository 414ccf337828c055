package wizard

import (
	"errors"
	"strconv"
	"strings"

	"weeklyreport/internal/domain"
)

// Rejection is a user-facing validation failure. The engine replies with
// its text and keeps the conversation on the same step; it is never a
// technical error.
type Rejection struct {
	Text string
}

func (r *Rejection) Error() string {
	return r.Text
}

func reject(text string) error {
	return &Rejection{Text: text}
}

// IsRejection reports whether err is a validation rejection
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

// NotTrackedPhrase opts out of a per-day metric series
const NotTrackedPhrase = "не отслеживаю"

// ParseWeekSeries parses seven slash-separated numbers, one per day of the
// week. Comma and dot both work as decimal separator. The opt-out phrase
// yields a not-tracked series instead.
func ParseWeekSeries(input string) (*domain.Series, error) {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == NotTrackedPhrase {
		return &domain.Series{NotTracked: true}, nil
	}

	var parts []string
	for _, p := range strings.Split(raw, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 7 {
		return nil, reject("Нужно 7 значений через / (по дням недели).")
	}

	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseFloat(strings.ReplaceAll(p, ",", "."), 64)
		if err != nil {
			return nil, reject("Все значения должны быть числами.")
		}
		values = append(values, n)
	}

	return &domain.Series{Values: values}, nil
}

// ParseScale parses a 1..10 rating, comma or dot decimals allowed
func ParseScale(input string) (float64, error) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(input), ",", "."), 64)
	if err != nil || n < 1 || n > 10 {
		return 0, reject("Оценка 1–10.")
	}
	return n, nil
}

// NormalizeOptional trims the input and collapses any of the none-phrases
// (case-insensitive) to the empty string. It never rejects.
func NormalizeOptional(input string, nonePhrases ...string) string {
	t := strings.TrimSpace(input)
	low := strings.ToLower(t)
	for _, phrase := range nonePhrases {
		if low == phrase {
			return ""
		}
	}
	return t
}

// RequireComment trims the input and demands at least three characters
func RequireComment(input string) (string, error) {
	t := strings.TrimSpace(input)
	if len([]rune(t)) < 3 {
		return "", reject("Комментарий слишком короткий — напиши пару слов подробнее.")
	}
	return t, nil
}
