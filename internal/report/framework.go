package report

import "fmt"

// Framework is an evaluation framework the review is written against.
type Framework string

const (
	FrameworkOKR        Framework = "OKR"
	FrameworkBARS       Framework = "BARS"
	FrameworkMBO        Framework = "MBO"
	FrameworkCompetency Framework = "Competency"
)

var rubrics = map[Framework]string{
	FrameworkOKR: `Objectives and Key Results (OKR) is a goal-setting framework that defines:
- Objectives: Qualitative, inspirational goals
- Key Results: Quantifiable, measurable outcomes
- Focus: Objective achievement, measurable results, progress tracking
- Evaluation criteria: Clarity of objectives, measurability of key results, achievement percentage`,

	FrameworkBARS: `Behaviorally Anchored Rating Scale (BARS) evaluates performance based on:
- Specific behavioral examples at different performance levels
- Observable and measurable behaviors
- Focus: Behavioral indicators, performance consistency, behavioral examples
- Evaluation criteria: Quality of behaviors demonstrated, consistency, impact of actions`,

	FrameworkMBO: `Management by Objectives (MBO) focuses on:
- Goal setting and achievement
- Manager-employee collaboration on objectives
- Results-oriented evaluation
- Focus: Goal attainment, management effectiveness, objective achievement
- Evaluation criteria: Goal completion rate, quality of outcomes, self-management capabilities`,

	FrameworkCompetency: `Competency-Based Evaluation assesses:
- Skills and competencies required for the role
- Behavioral indicators for each competency
- Focus: Skills assessment, behavioral indicators, capability development
- Evaluation criteria: Proficiency level, skill application, growth potential`,
}

// ParseFramework returns the framework named s. Matching is exact.
func ParseFramework(s string) (Framework, error) {
	f := Framework(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown framework %q", s)
	}
	return f, nil
}

func (f Framework) Valid() bool {
	_, ok := rubrics[f]
	return ok
}

// Rubric returns the framework description injected into prompts.
// It panics for a framework outside the enumeration; validate first.
func (f Framework) Rubric() string {
	r, ok := rubrics[f]
	if !ok {
		panic(fmt.Sprintf("report: no rubric for framework %q", string(f)))
	}
	return r
}
