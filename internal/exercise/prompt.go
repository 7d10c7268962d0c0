package exercise

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const generateSystemPrompt = `You are a language tutor creating writing exercises for learners.

Rules:
- Generate exactly one exercise. It is a task for the learner, never the text of the exercise itself.
- Match the exercise to the learner's proficiency level; the instructions themselves may be in the target language for advanced levels, otherwise in English.
- Hints are optional. They may include useful phrases and vocabulary for the task. Use markdown for hints formatting.
- If there are no hints, return them empty.`

const checkSystemPrompt = `You are a language tutor grading a learner's writing.

Rules:
- Only strict grammatical mistakes belong in the mistakes section. No recommendations or stylistic issues there.
- For mistakes and stylistic errors, quote the specific problematic text, followed by a clear and educational explanation.
- Recommendations cover improvement suggestions and whether the writing follows the exercise requirements.
- Return an empty section when nothing was found. Use markdown formatting within sections.`

const qaSystemPrompt = `You are a helpful language learning assistant. Provide a clear, educational response focused on language learning.`

// buildGeneratePrompt constructs the user message for exercise
// generation. A throwaway random number is included so repeated
// requests with identical parameters still produce varied exercises.
func buildGeneratePrompt(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a short '%s' writing exercise for a learner of %s at proficiency level %s.\n",
		input.Definition.Name, input.Language.Name, input.Level)
	fmt.Fprintf(&b, "The expected length of the writing should be between %d and %d words.\n",
		input.Definition.MinWords, input.Definition.MaxWords)
	fmt.Fprintf(&b, "Random number is %d (don't use it, it is just to make the prompt different).\n",
		rand.IntN(10000)+1)

	b.WriteString("\nThe requirements for the exercise are:\n")
	fmt.Fprintf(&b, "'%s'\n", input.Definition.Requirements)

	return b.String()
}

// buildHintsPrompt constructs the user message for hint generation on
// a user-authored exercise.
func buildHintsPrompt(input HintsInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Provide helpful hints or useful phrases for the following %s writing exercise aimed at level %s learners:\n\n",
		input.Language.Name, input.Level)
	b.WriteString(input.Exercise)
	b.WriteString("\n")

	return b.String()
}

// buildCheckPrompt constructs the user message for grading a writing
// submission.
func buildCheckPrompt(input CheckInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A student learning %s was given this %s level '%s' writing exercise:\n'%s'\n\n",
		input.Language.Name, input.Level, input.Definition.Name, input.Exercise)
	fmt.Fprintf(&b, "Their response was:\n'%s'\n\n", input.Writing)

	b.WriteString("Please check their writing. Provide feedback listing:\n")
	b.WriteString("1. Grammatical mistakes.\n")
	b.WriteString("2. Stylistic errors.\n")
	b.WriteString("3. Recommendations for improvement.\n")
	b.WriteString("4. Following the requirements of the exercise.\n")

	return b.String()
}

// buildAnswerPrompt constructs the user message for a learner
// question, including the exercise context when one exists.
func buildAnswerPrompt(input AnswerInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user is learning %s at %s level.", input.Language.Name, input.Level)
	if input.Exercise != "" {
		fmt.Fprintf(&b, " They are working on a %s exercise:\n\n\"%s\"", input.ExerciseType, input.Exercise)
	}
	b.WriteString("\n\nThe user's question is:\n")
	b.WriteString(input.Question)

	return b.String()
}
