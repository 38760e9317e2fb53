package report

import (
	"fmt"
	"strings"
)

const (
	noAccomplishmentsLine = "- No accomplishments recorded for this period"
	noObservationsLine    = "- No observations recorded for this period"

	defaultObservationCategory = "other"
)

// BuildPrompt renders the generation instruction for req. The records are
// used as given; call Prepare first to narrow them to the period.
// The output depends only on req.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are generating a %s performance evaluation for %s, a %s.\n\n",
		req.Framework, req.EmployeeName, req.EmployeeRole)

	fmt.Fprintf(&b, "Time Period: %s\n\n", req.Period.Label(req.Year))

	fmt.Fprintf(&b, "Evaluation Framework: %s\n", req.Framework)
	b.WriteString(req.Framework.Rubric())
	b.WriteString("\n\n")

	b.WriteString("Employee Accomplishments:\n")
	writeAccomplishments(&b, req.Accomplishments)
	b.WriteString("\n\n")

	b.WriteString("Observations:\n")
	writeObservations(&b, req.Observations)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `Please generate a structured performance review including:
1. Executive Summary
2. Key Achievements (with specific examples from accomplishments)
3. Performance Analysis (based on %s criteria)
4. Areas of Strength
5. Areas for Improvement
6. Specific Recommendations
7. Overall Assessment

Format the report in markdown with clear section headers (##, ###) and bullet points where appropriate.
Be specific and reference the actual accomplishments and observations provided.
`, req.Framework)

	return b.String()
}

func writeAccomplishments(b *strings.Builder, items []Accomplishment) {
	if len(items) == 0 {
		b.WriteString(noAccomplishmentsLine)
		return
	}
	for i, a := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "- [%s] %s", a.Period, a.Description)
	}
}

func writeObservations(b *strings.Builder, items []Observation) {
	if len(items) == 0 {
		b.WriteString(noObservationsLine)
		return
	}
	for i, o := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		category := o.Category
		if category == "" {
			category = defaultObservationCategory
		}
		fmt.Fprintf(b, "- [%s] %s", category, o.Description)
	}
}
