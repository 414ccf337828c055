package report

import (
	"fmt"
	"strconv"
	"strings"

	"weeklyreport/internal/domain"
)

// Build renders a completed answer set into the report text. Section order
// is fixed; optional sections are omitted entirely when empty.
func Build(a domain.Answers) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Еженедельный отчет (%s — %s)\n", a.Range.StartString(), a.Range.EndString())

	b.WriteString("\nВосстановление:\n")
	fmt.Fprintf(&b, "- Пульс покоя: %s\n", seriesLine(a.RestingHR))
	fmt.Fprintf(&b, "- Сон (часы): %s\n", seriesLine(a.Sleep))
	fmt.Fprintf(&b, "- Эмоционально: %s/10\n", formatNumber(a.Mood))
	fmt.Fprintf(&b, "- Физически: %s/10\n", formatNumber(a.Body))
	if a.Food != "" {
		fmt.Fprintf(&b, "- Питание: %s\n", a.Food)
	}
	if a.Pain != "" {
		fmt.Fprintf(&b, "- Самочувствие/травмы: %s\n", a.Pain)
	}

	b.WriteString("\nКомментарий недели:\n")
	b.WriteString(a.WeekComment)

	if a.PlanEdits != "" {
		b.WriteString("\n\nКорректировки предстоящего плана:\n")
		b.WriteString(a.PlanEdits)
	}
	if a.Wishes != "" {
		b.WriteString("\n\nПожелания по плану:\n")
		b.WriteString(a.Wishes)
	}
	if a.Questions != "" {
		b.WriteString("\n\nВопросы к тренеру:\n")
		b.WriteString(a.Questions)
	}

	return b.String()
}

func seriesLine(s *domain.Series) string {
	if s == nil || s.NotTracked {
		return "не отслеживаю"
	}
	parts := make([]string, 0, len(s.Values))
	for _, v := range s.Values {
		parts = append(parts, formatNumber(v))
	}
	return strings.Join(parts, " / ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
