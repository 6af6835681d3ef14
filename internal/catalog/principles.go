package catalog

import "learnlens/internal/model"

// principles is the full catalog in its canonical order. The order is a
// compatibility contract: legacy share links encode scores positionally
// against it, so entries must never be reordered, only appended.
var principles = []model.Principle{
	{
		ID:       "spaced-repetition",
		Title:    "Spaced Repetition",
		Category: model.CategoryMemory,
		Question: "Does the experience bring learners back to previously covered material at increasing intervals, rather than covering each topic exactly once?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Absent", Description: "Content is presented once and never revisited."},
			{Level: 2, Label: "Ad hoc", Description: "Occasional repeats exist but with no visible schedule or spacing."},
			{Level: 3, Label: "Fixed review", Description: "Material is revisited on a fixed cadence regardless of how long ago it was learned."},
			{Level: 4, Label: "Spaced", Description: "Reviews are deliberately spaced over time with growing intervals."},
			{Level: 5, Label: "Adaptive spacing", Description: "Review intervals expand per item based on the learner's demonstrated recall."},
		},
		Recommendation: "Schedule reviews of earlier material at expanding intervals instead of presenting each topic only once.",
		AppliesTo: []model.SectionType{
			model.SectionTypeReview, model.SectionTypeQuiz, model.SectionTypePostQuiz, model.SectionTypeOverall,
		},
	},
	{
		ID:       "retrieval-practice",
		Title:    "Retrieval Practice",
		Category: model.CategoryMemory,
		Question: "Are learners asked to actively recall information from memory (answering before seeing the solution), rather than only re-reading or re-watching?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Passive only", Description: "Learners only read or watch; nothing asks them to recall."},
			{Level: 2, Label: "Recognition", Description: "Questions exist but answers are visible or trivially guessable."},
			{Level: 3, Label: "Some recall", Description: "Learners occasionally answer from memory before feedback."},
			{Level: 4, Label: "Frequent recall", Description: "Recall attempts are a routine part of every topic."},
			{Level: 5, Label: "Recall first", Description: "The experience leads with retrieval attempts and withholds answers until the learner commits."},
		},
		Recommendation: "Add questions that require answering from memory before the solution is revealed.",
		AppliesTo: []model.SectionType{
			model.SectionTypeQuiz, model.SectionTypePreQuiz, model.SectionTypePostQuiz,
			model.SectionTypePractice, model.SectionTypeReview, model.SectionTypeOverall,
		},
	},
	{
		ID:       "interleaving",
		Title:    "Interleaving",
		Category: model.CategoryPractice,
		Question: "Are different topics or problem types mixed within a session, rather than practiced in long single-topic blocks?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Blocked", Description: "Every session drills a single topic in a long uniform block."},
			{Level: 2, Label: "Mostly blocked", Description: "Topics are mixed only at unit boundaries."},
			{Level: 3, Label: "Partially mixed", Description: "Sessions sometimes combine two related topics."},
			{Level: 4, Label: "Interleaved", Description: "Problem types alternate within a session so learners must pick the approach."},
			{Level: 5, Label: "Strategic mixing", Description: "Mixing is deliberate and includes earlier material so discrimination between methods is trained."},
		},
		Recommendation: "Mix problem types within practice sessions so learners must choose the right approach, not just repeat it.",
		AppliesTo: []model.SectionType{
			model.SectionTypePractice, model.SectionTypeLesson, model.SectionTypeQuiz,
			model.SectionTypePostQuiz, model.SectionTypeReview, model.SectionTypeOverall,
		},
	},
	{
		ID:       "cognitive-load",
		Title:    "Cognitive Load Management",
		Category: model.CategoryCognitiveLoad,
		Question: "Is information presented in digestible chunks with minimal extraneous decoration, so working memory is spent on the content itself?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Overloaded", Description: "Dense walls of text, competing visuals, or many simultaneous new ideas."},
			{Level: 2, Label: "Heavy", Description: "Long passages with occasional breaks; decorative elements distract."},
			{Level: 3, Label: "Chunked", Description: "Content arrives in reasonable chunks but pacing is uniform regardless of difficulty."},
			{Level: 4, Label: "Managed", Description: "One idea at a time, clean layout, difficulty ramps gradually."},
			{Level: 5, Label: "Optimized", Description: "Chunking, progressive disclosure and clean design keep all load germane to learning."},
		},
		Recommendation: "Break dense screens into single-idea steps and strip decoration that competes with the content.",
		// Applies everywhere.
	},
	{
		ID:       "dual-coding",
		Title:    "Dual Coding",
		Category: model.CategoryCognitiveLoad,
		Question: "Are words and visuals combined so the same idea is encoded through both channels (diagram + explanation), rather than text alone?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Text only", Description: "Explanations are purely verbal with no supporting visuals."},
			{Level: 2, Label: "Decorative images", Description: "Images exist but do not carry meaning."},
			{Level: 3, Label: "Some pairing", Description: "Key ideas occasionally get an explanatory visual."},
			{Level: 4, Label: "Consistent pairing", Description: "Most concepts pair a visual with a concise verbal explanation."},
			{Level: 5, Label: "Integrated", Description: "Visuals and words are designed together, labeled in place, with no split attention."},
		},
		Recommendation: "Pair each key concept with a meaningful visual and place labels inside the visual rather than in separate legends.",
		AppliesTo: []model.SectionType{
			model.SectionTypeLesson, model.SectionTypeOnboarding, model.SectionTypeReview, model.SectionTypeOverall,
		},
	},
	{
		ID:       "immediate-feedback",
		Title:    "Immediate Feedback",
		Category: model.CategoryFeedback,
		Question: "Do learners find out promptly whether an answer was right, and why, while the attempt is still fresh?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "None", Description: "Answers disappear into a void; correctness is never shown."},
			{Level: 2, Label: "Delayed", Description: "Feedback arrives only at the end of a long session."},
			{Level: 3, Label: "Right/wrong", Description: "Immediate correctness marks, but no explanation."},
			{Level: 4, Label: "Explained", Description: "Immediate feedback explains why the answer was right or wrong."},
			{Level: 5, Label: "Corrective", Description: "Immediate, explanatory feedback that targets the specific misconception behind the error."},
		},
		Recommendation: "Show correctness and a short explanation immediately after each answer, not at the end of the session.",
		AppliesTo: []model.SectionType{
			model.SectionTypeQuiz, model.SectionTypePreQuiz, model.SectionTypePostQuiz,
			model.SectionTypePractice, model.SectionTypeOverall,
		},
	},
	{
		ID:       "elaboration",
		Title:    "Elaboration & Examples",
		Category: model.CategoryPractice,
		Question: "Are learners prompted to connect new material to what they already know, with concrete examples and how/why questions?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Bare facts", Description: "Definitions are stated without examples or connections."},
			{Level: 2, Label: "Single example", Description: "One canned example per idea, no learner involvement."},
			{Level: 3, Label: "Varied examples", Description: "Multiple examples from different contexts are shown."},
			{Level: 4, Label: "Prompted", Description: "Learners are asked how/why questions that force them to explain the idea."},
			{Level: 5, Label: "Generative", Description: "Learners produce their own examples and link the idea to prior knowledge."},
		},
		Recommendation: "Ask learners to explain ideas in their own words and generate their own examples, not just read supplied ones.",
		AppliesTo: []model.SectionType{
			model.SectionTypeLesson, model.SectionTypeReview, model.SectionTypeOverall,
		},
	},
	{
		ID:       "worked-examples",
		Title:    "Worked Examples",
		Category: model.CategoryPractice,
		Question: "Do novices see fully worked solutions that fade into independent problem solving as skill grows?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Sink or swim", Description: "Learners are thrown straight into unsupported problems."},
			{Level: 2, Label: "Final answers", Description: "Solutions show the result but not the steps."},
			{Level: 3, Label: "Full solutions", Description: "Step-by-step worked examples exist for new material."},
			{Level: 4, Label: "Faded", Description: "Support fades: worked examples give way to completion problems, then full problems."},
			{Level: 5, Label: "Adaptive fading", Description: "The amount of worked support adjusts to each learner's demonstrated skill."},
		},
		Recommendation: "Introduce new skills with step-by-step worked examples and fade the support as learners progress.",
		AppliesTo: []model.SectionType{
			model.SectionTypeLesson, model.SectionTypePractice, model.SectionTypeOverall,
		},
	},
	{
		ID:       "adaptive-difficulty",
		Title:    "Adaptive Difficulty",
		Category: model.CategoryPersonalization,
		Question: "Does the challenge level adjust to the learner, keeping work hard enough to be effortful but not discouraging?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Flat", Description: "Everyone gets the same difficulty in the same order."},
			{Level: 2, Label: "Self-selected", Description: "Learners pick a difficulty tier manually, once."},
			{Level: 3, Label: "Gated", Description: "Difficulty rises after fixed milestones regardless of performance."},
			{Level: 4, Label: "Responsive", Description: "Difficulty moves up and down based on recent performance."},
			{Level: 5, Label: "Calibrated", Description: "Challenge is continuously tuned so learners succeed roughly 70-85% of the time."},
		},
		Recommendation: "Adjust difficulty from learner performance so practice stays effortful without becoming discouraging.",
		AppliesTo: []model.SectionType{
			model.SectionTypePractice, model.SectionTypeQuiz, model.SectionTypeLesson, model.SectionTypeOverall,
		},
	},
	{
		ID:       "goal-clarity",
		Title:    "Goal Clarity",
		Category: model.CategoryMotivation,
		Question: "Do learners always know what they are trying to achieve right now and why it matters?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Aimless", Description: "No stated objectives; learners wander through content."},
			{Level: 2, Label: "Course-level", Description: "Only a broad course goal is stated up front."},
			{Level: 3, Label: "Stated", Description: "Each unit states its objective, in instructor language."},
			{Level: 4, Label: "Learner-framed", Description: "Objectives are concrete, learner-facing, and visible during work."},
			{Level: 5, Label: "Connected", Description: "Every activity ties its objective to the learner's own goals and shows how it builds forward."},
		},
		Recommendation: "State a concrete, learner-facing objective for every unit and keep it visible while they work.",
		AppliesTo: []model.SectionType{
			model.SectionTypeOnboarding, model.SectionTypeLesson, model.SectionTypeOverall,
		},
	},
	{
		ID:       "progress-visibility",
		Title:    "Progress Visibility",
		Category: model.CategoryMotivation,
		Question: "Can learners see meaningful progress toward mastery, beyond raw completion percentages?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "Invisible", Description: "No progress indication anywhere."},
			{Level: 2, Label: "Completion bar", Description: "Only a content-consumed percentage is shown."},
			{Level: 3, Label: "Per-topic", Description: "Progress is broken down by topic or skill."},
			{Level: 4, Label: "Mastery-based", Description: "Progress reflects demonstrated skill, not time spent."},
			{Level: 5, Label: "Actionable", Description: "Mastery view highlights what to work on next and celebrates genuine milestones."},
		},
		Recommendation: "Track and display mastery per skill rather than content completed, and point learners at their weakest area next.",
		// Applies everywhere.
	},
	{
		ID:       "pretesting",
		Title:    "Pretesting",
		Category: model.CategoryFeedback,
		Question: "Are learners asked to attempt questions on material before it is taught, priming them for the upcoming content?",
		Rubric: []model.RubricLevel{
			{Level: 1, Label: "None", Description: "Learning always starts with exposition; nothing is asked in advance."},
			{Level: 2, Label: "Diagnostic only", Description: "An entry test exists but only for placement, invisible to the lesson."},
			{Level: 3, Label: "Occasional", Description: "Some units open with a warm-up question."},
			{Level: 4, Label: "Routine", Description: "Units consistently open with attempt-first questions on upcoming material."},
			{Level: 5, Label: "Closed loop", Description: "Pretest errors are explicitly revisited once the material has been taught."},
		},
		Recommendation: "Open units with a low-stakes attempt at the upcoming material and revisit those questions after teaching it.",
		AppliesTo: []model.SectionType{
			model.SectionTypePreQuiz, model.SectionTypeOverall,
		},
	},
}
