package fallback

import "fmt"

// Practice is a single practice question offered alongside a tutor answer.
type Practice struct {
	Question string
	Options  []string
	Answer   string
}

var practiceBySubject = map[string]Practice{
	"Mathematics": {"What is the value of x in the equation 2x + 5 = 13?", []string{"x = 3", "x = 4", "x = 5", "x = 6"}, "x = 4"},
	"Physics":     {"What is the SI unit of force?", []string{"Newton (N)", "Joule (J)", "Watt (W)", "Pascal (Pa)"}, "Newton (N)"},
	"Biology":     {"What is the powerhouse of the cell?", []string{"Mitochondria", "Nucleus", "Golgi apparatus", "Endoplasmic reticulum"}, "Mitochondria"},
	"Chemistry":   {"What is the chemical symbol for gold?", []string{"Ag", "Au", "Fe", "Cu"}, "Au"},
	"History":     {"What is the capital of Kenya?", []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru"}, "Nairobi"},
	"Geography":   {"What is the largest desert in Africa?", []string{"Sahara", "Kalahari", "Namib", "Libyan"}, "Sahara"},
	"English":     {"Which of these is a proper noun?", []string{"city", "London", "river", "mountain"}, "London"},
}

// PracticeFor returns the canned practice question for a subject. Unknown
// subjects get the Mathematics question.
func PracticeFor(subject string) Practice {
	p, ok := practiceBySubject[subject]
	if !ok {
		p = practiceBySubject["Mathematics"]
	}
	p.Options = append([]string(nil), p.Options...)
	return p
}

var answerTemplates = map[string]string{
	"Mathematics": "Let me help you understand %[1]s! '%[2]s' is an important mathematical concept. Mathematics is the study of numbers, quantities, shapes and patterns. Start with the fundamentals, work through examples step by step, and build up to more complex problems.",
	"Physics":     "Great question about %[1]s! '%[2]s' touches on fundamental physics principles. Physics is the study of matter, energy and their interactions. Focus on understanding the underlying principles rather than just memorising formulas.",
	"Biology":     "Excellent %[1]s question: '%[2]s'. Biology is the study of living organisms and life processes. Try to connect each concept to real-world examples you can observe around you.",
	"Chemistry":   "Interesting %[1]s question: '%[2]s'. Chemistry is the study of matter, its properties and how it changes. It is in the air we breathe, the food we eat and the materials we use every day.",
	"History":     "Fascinating %[1]s question: '%[2]s'. History is the study of past events and how they shape our present. Look for patterns and connections between different events.",
	"Geography":   "Great %[1]s question: '%[2]s'. Geography is the study of Earth's physical features, climate and human populations, and how people interact with their environment.",
	"English":     "Excellent %[1]s question: '%[2]s'. Studying English develops communication skills, critical thinking and cultural understanding through language and literature.",
	"General":     "Interesting question: '%[2]s'. Break new ideas into smaller parts and connect them to things you already know.",
}

// Answer returns the canned tutor answer for a subject and question.
func Answer(subject, question string) string {
	tmpl, ok := answerTemplates[subject]
	if !ok {
		tmpl = answerTemplates["General"]
	}
	return fmt.Sprintf(tmpl, subject, question)
}

var teachingStyles = map[string]string{
	"Mathematics": "step-by-step problem solving with clear explanations",
	"Physics":     "conceptual understanding with real-world examples",
	"Chemistry":   "molecular visualization with practical applications",
	"Biology":     "life science connections with African context",
	"History":     "narrative storytelling with critical analysis",
	"Geography":   "spatial thinking with local and global perspectives",
	"English":     "language development with cultural context",
}

// TeachingStyle returns the preferred teaching style for a subject.
func TeachingStyle(subject string) string {
	if s, ok := teachingStyles[subject]; ok {
		return s
	}
	return "interactive learning with practical examples"
}
