package chatbot

import (
	"strings"

	"saicollege/internal/models"
)

// CourseMatch is a course found in the knowledge base with its owning level.
type CourseMatch struct {
	Level  models.CourseLevel
	Course models.Course
}

// FindCourse looks a course up by keyword. An exact, case-insensitive name
// match in any level wins; only when none exists is a second pass made for
// containment in either direction. Both passes scan ug, pg, then diploma.
func FindCourse(kb *models.KnowledgeBase, keyword string) (CourseMatch, bool) {
	k := strings.ToLower(strings.TrimSpace(keyword))
	if kb == nil || k == "" {
		return CourseMatch{}, false
	}

	for _, level := range models.CourseLevels {
		for _, c := range kb.Courses(level) {
			if k == strings.ToLower(c.Name) {
				return CourseMatch{Level: level, Course: c}, true
			}
		}
	}

	for _, level := range models.CourseLevels {
		for _, c := range kb.Courses(level) {
			name := strings.ToLower(c.Name)
			if name == "" {
				continue
			}
			if strings.Contains(name, k) || strings.Contains(k, name) {
				return CourseMatch{Level: level, Course: c}, true
			}
		}
	}

	return CourseMatch{}, false
}

type courseKeyword struct {
	keyword string
	course  string
}

// courseKeywords maps free-text keywords to canonical course names. Order
// matters: the first keyword present in a query is the one tried.
var courseKeywords = []courseKeyword{
	{"bca", "BCA"},
	{"bba", "BBA"},
	{"b.com", "B.Com"},
	{"bcom", "B.Com"},
	{"bsc biotech", "BSc Biotech"},
	{"biotech", "BSc Biotech"},
	{"biotechnology", "BSc Biotech"},
	{"bsc cs", "BSc CS"},
	{"bsc computer", "BSc CS"},
	{"computer science", "BSc CS"},
	{"bsc maths", "BSc Maths/Bio"},
	{"bsc bio", "BSc Maths/Bio"},
	{"bachelor of arts", "BA"},
	{"msc biotech", "MSc Biotech"},
	{"msc cs", "MSc CS"},
	{"msc computer", "MSc CS"},
	{"msc chemistry", "MSc Chemistry"},
	{"m.com", "M.Com"},
	{"mcom", "M.Com"},
	{"m.lib", "M.Lib. (ISc)"},
	{"mlib", "M.Lib. (ISc)"},
	{"library science", "M.Lib. (ISc)"},
	{"m.a", "M.A. (English)"},
	{"ma english", "M.A. (English)"},
	{"dca", "DCA"},
	{"pgdca", "PGDCA"},
}

// courseInQuery tries every course keyword found in the query in order and
// returns the first one whose lookup succeeds.
func courseInQuery(q *Query, kb *models.KnowledgeBase) (CourseMatch, bool) {
	for _, ck := range courseKeywords {
		if !q.Contains(ck.keyword) {
			continue
		}
		if m, ok := FindCourse(kb, ck.course); ok {
			return m, true
		}
	}
	return CourseMatch{}, false
}

// courseWords returns the words a query may use to name a course: every
// keyword above plus the course names stored in kb. These are kept out of
// spelling correction.
func courseWords(kb *models.KnowledgeBase) WordSet {
	words := make(WordSet)
	for _, ck := range courseKeywords {
		words.Add(ck.keyword)
	}
	if kb == nil {
		return words
	}
	for _, level := range models.CourseLevels {
		for _, c := range kb.Courses(level) {
			words.Add(c.Name)
		}
	}
	return words
}
