package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/smartlearn/internal/fallback"
)

const systemPrompt = `You are SmartLearn, an expert tutor for African high school students. Provide clear, engaging explanations aligned with KCSE/WAEC curricula.`

func buildUserMessage(subject, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are SmartLearn, an expert %s tutor for African high school students.\n\n", subject)
	fmt.Fprintf(&b, "STUDENT QUESTION: %s\n\n", question)
	b.WriteString("Teach the concept the student asked about. Do not give a generic acknowledgment.\n\n")
	b.WriteString("TEACHING REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Subject: %s\n", subject)
	fmt.Fprintf(&b, "- Teaching Style: %s\n", fallback.TeachingStyle(subject))
	b.WriteString("- Curriculum: Kenya Certificate of Secondary Education\n")
	b.WriteString("- Target Audience: African high school students (ages 14-18)\n")
	b.WriteString(`
Structure the answer exactly as follows:

Key Points:
- 3-4 main concepts related to the question

Step-by-Step Explanation:
A complete explanation in simple terms, with examples and analogies.

Real-world Example:
A practical example relevant to an African context or daily life.

Common Mistakes:
2-3 errors students make with this concept and how to avoid them.

Additional Tips:
1-2 study tips or memory aids.

Then write one multiple choice practice question on the same concept.
`)
	return b.String()
}

// normalizeAnswer makes sure the answer opens with the Key Points heading.
func normalizeAnswer(subject, answer string) string {
	answer = strings.TrimSpace(answer)
	if strings.HasPrefix(answer, "Key Points:") {
		return answer
	}
	return fmt.Sprintf("Key Points:\n- Understanding %s concepts\n\n%s", subject, answer)
}
