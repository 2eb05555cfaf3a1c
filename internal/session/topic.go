package session

import "strings"

// GeneralTopic is used when no keyword matches.
const GeneralTopic = "General"

// topicKeywords are checked in order; the first substring match wins.
var topicKeywords = map[string][]string{
	"Mathematics": {"algebra", "geometry", "calculus", "trigonometry", "statistics"},
	"Physics":     {"mechanics", "electricity", "waves", "optics", "thermodynamics"},
	"Biology":     {"cell", "genetics", "ecology", "evolution", "anatomy"},
	"Chemistry":   {"inorganic", "organic", "physical", "analytical", "biochemistry"},
	"History":     {"ancient", "medieval", "modern", "african", "world"},
	"Geography":   {"physical", "human", "economic", "political", "climate"},
}

// ExtractTopic guesses a question's topic from keywords of its subject.
func ExtractTopic(subject, question string) string {
	q := strings.ToLower(question)
	for _, kw := range topicKeywords[subject] {
		if strings.Contains(q, kw) {
			return strings.ToUpper(kw[:1]) + kw[1:]
		}
	}
	return GeneralTopic
}
