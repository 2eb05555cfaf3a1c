package fallback

// Catalog lists the subjects and topics students can request quizzes for.
type Catalog struct {
	Subjects     []CatalogSubject `json:"subjects"`
	Difficulties []string         `json:"difficulty_levels"`
	QuizTypes    []string         `json:"quiz_types"`
}

// CatalogSubject is one subject with its quiz topics.
type CatalogSubject struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

var catalogSubjects = []CatalogSubject{
	{Name: "Mathematics", Topics: []string{"Algebra", "Geometry", "Trigonometry", "Calculus", "Statistics"}},
	{Name: "Physics", Topics: []string{"Mechanics", "Electricity", "Waves", "Optics", "Modern Physics"}},
	{Name: "Biology", Topics: []string{"Cell Biology", "Genetics", "Ecology", "Evolution", "Human Biology"}},
	{Name: "Chemistry", Topics: []string{"Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry", "Analytical Chemistry"}},
	{Name: "History", Topics: []string{"Ancient History", "Medieval History", "Modern History", "African History", "World History"}},
	{Name: "Geography", Topics: []string{"Physical Geography", "Human Geography", "Economic Geography", "Political Geography", "Climate"}},
	{Name: "English", Topics: []string{"Grammar", "Comprehension", "Literature", "Composition"}},
}

// AvailableQuizzes returns the quiz catalog. The enum lists are supplied by
// the caller so this package stays free of quiz types.
func AvailableQuizzes(difficulties, quizTypes []string) Catalog {
	subjects := make([]CatalogSubject, len(catalogSubjects))
	for i, s := range catalogSubjects {
		subjects[i] = CatalogSubject{Name: s.Name, Topics: append([]string(nil), s.Topics...)}
	}
	return Catalog{
		Subjects:     subjects,
		Difficulties: difficulties,
		QuizTypes:    quizTypes,
	}
}

// CommonTopics returns the catalog topics for a subject, or nil if the
// subject is not in the catalog.
func CommonTopics(subject string) []string {
	for _, s := range catalogSubjects {
		if s.Name == subject {
			return s.Topics
		}
	}
	return nil
}
