package service

import (
	"fmt"
	"strings"

	"learnlens/internal/catalog"
	"learnlens/internal/model"
)

// BuildSectionPrompt assembles the scoring instruction block for one
// section: identity, answered upfront-context hints, optional notes, the
// rubric for each applicable principle, and the strict JSON output
// contract. Pure string assembly, no side effects.
//
// The catalog is pre-filtered by applicability rather than asking the model
// to judge relevance itself: the prompt stays small and the model cannot
// mis-score a principle that provably does not apply to this section type.
func BuildSectionPrompt(sectionName string, sectionType model.SectionType, notes string, contextAnswers map[string]string, applicable []string) string {
	var b strings.Builder

	b.WriteString("You are an expert instructional designer auditing a learning experience against learning-science principles.\n\n")
	if sectionName != "" {
		fmt.Fprintf(&b, "You are scoring ONE section of the experience: %q (section type: %s).\n", sectionName, sectionType)
		b.WriteString("Score only what this section's screenshots show.\n\n")
	} else {
		fmt.Fprintf(&b, "You are scoring the experience as a whole (section type: %s).\n\n", sectionType)
	}

	if hints := contextHints(contextAnswers); len(hints) > 0 {
		b.WriteString("The user answered questions about behavior that screenshots cannot show. Weigh these facts when scoring the named principles:\n")
		for _, h := range hints {
			b.WriteString("- " + h + "\n")
		}
		b.WriteString("\n")
	}

	if notes != "" {
		b.WriteString("The user added notes about this section. Weigh them alongside the screenshots:\n")
		b.WriteString(notes + "\n\n")
	}

	b.WriteString("Score each principle below from 1 (worst) to 5 (best) using its rubric, or mark it not applicable if the screenshots genuinely cannot speak to it.\n\n")

	for _, id := range applicable {
		p, ok := catalog.PrincipleByID(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s (%s)\n%s\n", p.Title, p.ID, p.Question)
		for _, level := range p.Rubric {
			fmt.Fprintf(&b, "%d. %s: %s\n", level.Level, level.Label, level.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString(`Return ONLY a single JSON object, no surrounding prose:
{
  "scores": {
    "<principle-id>": {
      "score": 1-5 (0 if not applicable),
      "reasoning": "one or two sentences citing what you saw",
      "confidence": "high" | "medium" | "low",
      "notApplicable": true | false
    }
  }
}
Include every principle listed above and no others.`)

	return b.String()
}

// contextHints translates answered upfront questions into scoring hints.
// Unanswered questions contribute nothing. Hint order follows the question
// bank so prompts are deterministic.
func contextHints(answers map[string]string) []string {
	if len(answers) == 0 {
		return nil
	}
	var hints []string
	for _, q := range catalog.UpfrontQuestions() {
		answer, ok := answers[q.ID]
		if !ok || answer == "" {
			continue
		}
		hint, ok := q.Hints[answer]
		if !ok {
			hint = fmt.Sprintf("The user answered %q to %q.", answer, q.Prompt)
		}
		hints = append(hints, fmt.Sprintf("%s (informs: %s)", hint, strings.Join(q.Affects, ", ")))
	}
	return hints
}

// BuildRefinePrompt assembles the batched refinement request: each gap
// principle's original score and the user's follow-up answers, with the
// strict JSON output contract for refined scores and concrete actions.
func BuildRefinePrompt(gaps []model.AggregatedRating, answers map[string]model.RefinementAnswer) string {
	var b strings.Builder

	b.WriteString("You previously scored a learning experience against learning-science principles. ")
	b.WriteString("The user has now answered follow-up questions about behaviors that were invisible in the screenshots. ")
	b.WriteString("Re-score each principle below in light of their answers. Keep the original score when the answers do not justify a change.\n\n")

	for _, gap := range gaps {
		p, ok := catalog.PrincipleByID(gap.PrincipleID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s (%s)\n", p.Title, p.ID)
		fmt.Fprintf(&b, "Original score: %d/5. %s\n", gap.Score, gap.Reasoning)
		answer := answers[gap.PrincipleID]
		if len(answer.Selected) == 0 && answer.FreeText == "" {
			b.WriteString("User answer: (question skipped)\n\n")
			continue
		}
		if len(answer.Selected) > 0 {
			fmt.Fprintf(&b, "User confirmed: %s\n", strings.Join(answer.Selected, "; "))
		}
		if answer.FreeText != "" {
			fmt.Fprintf(&b, "User added: %s\n", answer.FreeText)
		}
		b.WriteString("\n")
	}

	b.WriteString(`Return ONLY a single JSON object, no surrounding prose:
{
  "refined": {
    "<principle-id>": {
      "score": 1-5,
      "reasoning": "updated reasoning reflecting the user's answers",
      "actions": ["2-4 concrete improvement actions"]
    }
  }
}
Include every principle listed above and no others.`)

	return b.String()
}
