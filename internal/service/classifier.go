package service

import (
	"strings"

	"learnlens/internal/model"
)

// patternGroup binds a set of name substrings to a section type. Groups are
// evaluated in order and the first match wins, so specific quiz variants
// must precede the generic quiz patterns, quiz precedes practice, and so on
// down to the lesson fallback.
type patternGroup struct {
	sectionType model.SectionType
	patterns    []string
}

var classifierGroups = []patternGroup{
	{model.SectionTypePreQuiz, []string{"pre-quiz", "pre quiz", "prequiz", "pre-test", "pre test", "pretest", "pre-lesson", "pre lesson", "diagnostic", "placement", "baseline"}},
	{model.SectionTypePostQuiz, []string{"post-quiz", "post quiz", "postquiz", "post-test", "post test", "posttest", "post-lesson", "post lesson", "final quiz", "final test", "exit quiz", "exit ticket"}},
	{model.SectionTypeQuiz, []string{"quiz", "test", "exam", "assessment", "knowledge check", "checkpoint"}},
	{model.SectionTypePractice, []string{"practice", "exercise", "drill", "workout", "challenge", "problem", "activity", "lab"}},
	{model.SectionTypeReview, []string{"review", "recap", "summary", "revision", "refresher", "flashcard"}},
	{model.SectionTypeOnboarding, []string{"onboarding", "welcome", "intro", "getting started", "tutorial", "setup", "sign up", "signup"}},
	{model.SectionTypeLesson, []string{"lesson", "module", "chapter", "unit", "course", "lecture", "content", "learn"}},
}

// ClassifySection maps a free-text section name to its section type. Total
// and deterministic: names matching nothing classify as lesson.
func ClassifySection(name string) model.SectionType {
	lowered := strings.ToLower(name)
	for _, group := range classifierGroups {
		for _, pattern := range group.patterns {
			if strings.Contains(lowered, pattern) {
				return group.sectionType
			}
		}
	}
	return model.SectionTypeLesson
}

// ClassifyAll returns the distinct set of types across section names.
// Used by the missing-flow advisor to see which flows an audit covers.
func ClassifyAll(names []string) map[model.SectionType]bool {
	types := make(map[model.SectionType]bool, len(names))
	for _, name := range names {
		types[ClassifySection(name)] = true
	}
	return types
}

// sectionTypeOf resolves a section's effective type, honoring an explicit
// user override when one is set.
func sectionTypeOf(s *model.Section) model.SectionType {
	if s.TypeOverride != "" && s.TypeOverride.IsValid() {
		return s.TypeOverride
	}
	return ClassifySection(s.Name)
}
