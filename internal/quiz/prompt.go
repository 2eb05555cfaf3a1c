package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are SmartLearn, an expert quiz writer for high school students preparing for national exams (KCSE/WAEC level).

Rules:
- Write multiple choice questions with exactly 4 options and exactly one correct option.
- All options must be distinct and plausible; distractors should reflect common mistakes.
- correct_option must repeat the full text of the correct option, not a letter.
- Include a brief explanation of why the correct option is right.
- Do not repeat a question.
- Use real-world examples relevant to an African context when possible.`

// buildUserMessage describes the requested quiz to the generator.
func buildUserMessage(p Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s level quiz for %s focusing on %s.\n\n", p.Difficulty, p.Subject, p.Topic)
	fmt.Fprintf(&b, "Number of questions: %d\n", p.Count)
	fmt.Fprintf(&b, "Quiz type: %s (%s)\n", p.Type, p.Type.describe())
	fmt.Fprintf(&b, "Difficulty: %s (suitable for %s understanding)\n", p.Difficulty, p.Difficulty.complexity())
	return b.String()
}
