package catalog

// UpfrontQuestion asks about behavior that screenshots cannot show (timing,
// adaptivity, scheduling). Answered questions become scoring hints in the
// analysis prompt; unanswered ones contribute nothing.
type UpfrontQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Affects []string `json:"affects"` // principle ids this answer informs

	// Hints maps an option to the plain-language scoring hint embedded in
	// the prompt. Options without a hint fall back to quoting the answer.
	Hints map[string]string `json:"-"`
}

var upfrontQuestions = []UpfrontQuestion{
	{
		ID:      "review-scheduling",
		Prompt:  "How does the product decide when learners revisit old material?",
		Options: []string{"Never revisited", "Fixed schedule", "Spaced intervals", "Adaptive per item"},
		Affects: []string{"spaced-repetition"},
		Hints: map[string]string{
			"Never revisited":   "The user reports material is never revisited after first exposure.",
			"Fixed schedule":    "The user reports reviews happen on a fixed cadence, not spaced intervals.",
			"Spaced intervals":  "The user reports reviews are scheduled at expanding intervals.",
			"Adaptive per item": "The user reports review intervals adapt per item to learner recall.",
		},
	},
	{
		ID:      "difficulty-adaptation",
		Prompt:  "Does difficulty change based on learner performance?",
		Options: []string{"No, same for everyone", "Learner picks a level", "Adjusts after milestones", "Continuously adapts"},
		Affects: []string{"adaptive-difficulty"},
		Hints: map[string]string{
			"No, same for everyone":    "The user reports difficulty is identical for all learners.",
			"Learner picks a level":    "The user reports learners self-select a difficulty tier once.",
			"Adjusts after milestones": "The user reports difficulty changes only at fixed milestones.",
			"Continuously adapts":      "The user reports difficulty continuously adapts to performance.",
		},
	},
	{
		ID:      "feedback-timing",
		Prompt:  "When do learners find out whether an answer was correct?",
		Options: []string{"Immediately with explanation", "Immediately, right/wrong only", "At the end of a session", "Never shown"},
		Affects: []string{"immediate-feedback"},
		Hints: map[string]string{
			"Immediately with explanation":  "The user reports answers get immediate feedback with explanations.",
			"Immediately, right/wrong only": "The user reports immediate correctness marks without explanations.",
			"At the end of a session":       "The user reports feedback is delayed until the session ends.",
			"Never shown":                   "The user reports correctness is never shown to learners.",
		},
	},
	{
		ID:      "mastery-tracking",
		Prompt:  "What does the progress display actually measure?",
		Options: []string{"Nothing is tracked", "Content completed", "Skill mastery", "Mastery plus next steps"},
		Affects: []string{"progress-visibility"},
		Hints: map[string]string{
			"Nothing is tracked":       "The user reports no progress tracking exists.",
			"Content completed":        "The user reports progress only measures content consumed.",
			"Skill mastery":            "The user reports progress reflects demonstrated skill mastery.",
			"Mastery plus next steps":  "The user reports a mastery view that also recommends what to study next.",
		},
	},
}

// FollowUpQuestion is the clarifying question asked for one gap principle
// during refinement. Options are multiple-select; free text is always
// allowed alongside.
type FollowUpQuestion struct {
	PrincipleID string   `json:"principleId"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
}

var followUpQuestions = map[string]FollowUpQuestion{
	"spaced-repetition": {
		PrincipleID: "spaced-repetition",
		Prompt:      "Which of these review behaviors exist but might not show in screenshots?",
		Options: []string{
			"Old material resurfaces in later sessions",
			"Review intervals grow over time",
			"Struggling items come back sooner",
			"Email or push reminders prompt reviews",
		},
	},
	"retrieval-practice": {
		PrincipleID: "retrieval-practice",
		Prompt:      "How do learners interact with questions in practice?",
		Options: []string{
			"Answers are hidden until the learner commits",
			"Learners type or speak answers from memory",
			"Hints are available but optional",
			"Questions recur without the original context",
		},
	},
	"interleaving": {
		PrincipleID: "interleaving",
		Prompt:      "How are topics sequenced inside a single session?",
		Options: []string{
			"Several topics alternate within one session",
			"Earlier topics reappear mixed into new ones",
			"Learners must pick which method applies",
			"Sessions always drill one topic",
		},
	},
	"cognitive-load": {
		PrincipleID: "cognitive-load",
		Prompt:      "How is new information introduced?",
		Options: []string{
			"One idea per screen",
			"Details are revealed progressively",
			"Complex topics are split across sessions",
			"Everything for a topic appears at once",
		},
	},
	"dual-coding": {
		PrincipleID: "dual-coding",
		Prompt:      "How do visuals relate to the explanations?",
		Options: []string{
			"Diagrams carry meaning, not decoration",
			"Labels sit inside the visuals",
			"Animations pace with the narration",
			"Visuals are mostly stock imagery",
		},
	},
	"immediate-feedback": {
		PrincipleID: "immediate-feedback",
		Prompt:      "What happens right after a learner answers?",
		Options: []string{
			"Correctness shows instantly",
			"An explanation accompanies the verdict",
			"Wrong answers trigger a targeted hint",
			"Nothing until the session summary",
		},
	},
	"elaboration": {
		PrincipleID: "elaboration",
		Prompt:      "Are learners pushed to explain or connect ideas?",
		Options: []string{
			"How/why questions follow new ideas",
			"Learners write explanations in their own words",
			"New ideas are linked to earlier ones",
			"Learners supply their own examples",
		},
	},
	"worked-examples": {
		PrincipleID: "worked-examples",
		Prompt:      "How much solution support do novices get?",
		Options: []string{
			"Full step-by-step solutions for new skills",
			"Partially completed problems to finish",
			"Support fades as learners improve",
			"Problems arrive with no worked support",
		},
	},
	"adaptive-difficulty": {
		PrincipleID: "adaptive-difficulty",
		Prompt:      "What drives the difficulty learners experience?",
		Options: []string{
			"Recent performance moves difficulty up and down",
			"Success rate is kept in a target band",
			"Difficulty only ever increases",
			"A single setting chosen at signup",
		},
	},
	"goal-clarity": {
		PrincipleID: "goal-clarity",
		Prompt:      "How are objectives communicated during work?",
		Options: []string{
			"Each unit states a concrete objective",
			"The objective stays visible while working",
			"Objectives connect to the learner's own goals",
			"Only a broad course description exists",
		},
	},
	"progress-visibility": {
		PrincipleID: "progress-visibility",
		Prompt:      "What can learners see about their own progress?",
		Options: []string{
			"Per-skill mastery levels",
			"What to work on next",
			"Only a completion percentage",
			"Milestones are celebrated when earned",
		},
	},
	"pretesting": {
		PrincipleID: "pretesting",
		Prompt:      "Do learners attempt material before it is taught?",
		Options: []string{
			"Units open with warm-up questions",
			"Pretest misses are revisited after teaching",
			"An entry diagnostic places learners",
			"Learning always starts with exposition",
		},
	},
}

// UpfrontQuestions returns the pre-analysis context questions.
func UpfrontQuestions() []UpfrontQuestion {
	return upfrontQuestions
}

// UpfrontQuestionByID looks up an upfront question.
func UpfrontQuestionByID(id string) (*UpfrontQuestion, bool) {
	for i := range upfrontQuestions {
		if upfrontQuestions[i].ID == id {
			return &upfrontQuestions[i], true
		}
	}
	return nil, false
}

// FollowUpFor returns the refinement question for a principle. Every
// catalog principle has one; the bool guards against unknown ids.
func FollowUpFor(principleID string) (FollowUpQuestion, bool) {
	q, ok := followUpQuestions[principleID]
	return q, ok
}
