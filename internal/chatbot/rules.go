package chatbot

import "saicollege/internal/models"

// Predicate decides whether a rule applies to a query. Predicates that
// depend on a knowledge-base field return false when the field is absent.
type Predicate func(q *Query, kb *models.KnowledgeBase) bool

// Responder builds the reply for a matched rule. Returning false declines
// the match (e.g. a course lookup failed) and evaluation moves on.
type Responder func(q *Query, kb *models.KnowledgeBase) (string, bool)

// Rule is one (predicate, responder) entry of the ordered cascade.
type Rule struct {
	Name    string
	Match   Predicate
	Respond Responder
}

var (
	greetingWords = Keywords{Tokens: []string{"hi", "hii", "hiii", "hello", "hey", "namaste", "namaskar"}}
	thanksWords   = Keywords{Tokens: []string{"thank", "thanks", "dhanyawad", "shukriya"}}

	principalWords = Keywords{Tokens: []string{"head"}, Phrases: []string{"principal", "pracharya"}}
	directorWords  = Keywords{Tokens: []string{"owner"}, Phrases: []string{"director", "chairman"}}
	syllabusWords  = Keywords{Tokens: []string{"pdf"}, Phrases: []string{"syllabus", "curriculum", "subject", "pattern"}}

	transportWords  = Keywords{Tokens: []string{"bus", "gadi", "van"}, Phrases: []string{"transport", "vehicle", "aana jaana"}}
	hostelWords     = Keywords{Tokens: []string{"stay"}, Phrases: []string{"hostel", "accommodation", "rehne"}}
	labWords        = Keywords{Tokens: []string{"lab", "labs"}, Phrases: []string{"laboratory", "computer", "internet", "wifi"}}
	libraryWords    = Keywords{Tokens: []string{"book", "books"}, Phrases: []string{"library", "pustakalaya", "reading"}}
	sportsWords     = Keywords{Phrases: []string{"sport", "games", "khel", "cricket", "football"}}
	incubationWords = Keywords{Phrases: []string{"incubation", "kalakriti", "entrepreneur"}}
	facilityWords   = Keywords{Phrases: []string{"facilities", "facility", "suvidha", "infrastructure"}}

	contactWords = Keywords{
		Tokens:  []string{"phone", "call"},
		Phrases: []string{"contact", "number", "mobile", "email", "website", "address", "sampark", "location"},
	}
	aboutWords = Keywords{Tokens: []string{"bare"}, Phrases: []string{"about", "recognition", "accreditation", "naac", "baare"}}

	feeWords           = Keywords{Phrases: []string{"fee", "cost", "kitna"}}
	ugWords            = Keywords{Tokens: []string{"ug"}, Phrases: []string{"undergraduate"}}
	pgWords            = Keywords{Tokens: []string{"pg"}, Phrases: []string{"postgraduate"}}
	diplomaWords       = Keywords{Phrases: []string{"diploma"}}
	courseMentionWords = Keywords{Phrases: []string{"course"}}

	deadlineWords   = Keywords{Phrases: []string{"last date", "deadline", "kab tak"}}
	admissionWords  = Keywords{Phrases: []string{"admission", "apply", "eligibility", "documents", "pravesh"}}
	semesterWords   = Keywords{Phrases: []string{"semester", "yearly", "exam system", "annual"}}
	attendanceWords = Keywords{Tokens: []string{"present"}, Phrases: []string{"attendance", "hazri", "absent", "75 percent"}}
	examWords       = Keywords{Phrases: []string{"exam pattern", "paper pattern", "marks distribution", "theory practical", "exam kaisa"}}
	scholarWords    = Keywords{Phrases: []string{"scholarship", "chhatravriti", "concession", "financial", "milti", "milta", "chahiye"}}
	placementWords  = Keywords{Tokens: []string{"job", "jobs"}, Phrases: []string{"placement", "career", "companies"}}
	galleryWords    = Keywords{Phrases: []string{"photo", "gallery", "image"}}
)

// levelWords pairs each course level with the words that name it, in the
// order levels are tested.
var levelWords = []struct {
	level models.CourseLevel
	words Keywords
}{
	{models.LevelUG, ugWords},
	{models.LevelPG, pgWords},
	{models.LevelDiploma, diplomaWords},
}

// DefaultRules returns the ordered rule cascade. The first rule whose
// predicate holds and whose responder accepts produces the reply.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "greeting",
			Match: keywords(greetingWords),
			Respond: func(q *Query, _ *models.KnowledgeBase) (string, bool) {
				return Greeting(q.Lang), true
			},
		},
		canned("thanks", thanksWords, func(*models.KnowledgeBase) string { return ReplyThanks }),
		{
			Name: "principal",
			Match: func(q *Query, kb *models.KnowledgeBase) bool {
				return kb.Principal != nil && principalWords.In(q)
			},
			Respond: fixed(replyPrincipal),
		},
		{
			Name: "director",
			Match: func(q *Query, kb *models.KnowledgeBase) bool {
				return kb.Director != nil && directorWords.In(q)
			},
			Respond: fixed(replyDirector),
		},
		canned("syllabus", syllabusWords, func(*models.KnowledgeBase) string { return replySyllabus }),
		facility("transport", "transport", transportWords),
		facility("hostel", "hostel", hostelWords),
		facility("labs", "labs", labWords),
		facility("library", "library", libraryWords),
		facility("sports", "sports", sportsWords),
		facility("incubation", "incubation", incubationWords),
		{
			Name: "facilities-all",
			Match: func(q *Query, kb *models.KnowledgeBase) bool {
				return facilityWords.In(q) && q.HasToken("all") && hasFacilities(kb, allFacilityKeys...)
			},
			Respond: fixed(replyAllFacilities),
		},
		canned("facilities", facilityWords, func(*models.KnowledgeBase) string { return replyFacilitiesMenu }),
		canned("contact", contactWords, replyContact),
		{
			Name: "about",
			Match: func(q *Query, kb *models.KnowledgeBase) bool {
				return kb.Director != nil && kb.Principal != nil && aboutWords.In(q)
			},
			Respond: fixed(replyAbout),
		},
		namedCourse("course-msc-biotech", "MSc Biotech", func(q *Query) bool {
			return q.HasToken("msc") && q.Contains("biotech")
		}),
		namedCourse("course-pgdca", "PGDCA", func(q *Query) bool {
			return q.Contains("pg") && q.Contains("dca")
		}),
		namedCourse("course-ba", "BA", func(q *Query) bool {
			return q.HasToken("ba") || q.Contains("bachelor of arts")
		}),
		{
			Name: "course-keyword",
			Match: func(q *Query, _ *models.KnowledgeBase) bool {
				return !q.Contains("incubation")
			},
			Respond: func(q *Query, kb *models.KnowledgeBase) (string, bool) {
				m, ok := courseInQuery(q, kb)
				if !ok {
					return "", false
				}
				return replyCourse(kb, m.Course), true
			},
		},
		// Repeats of earlier facility rules, shadowed by them.
		facility("hostel-repeat", "hostel", hostelWords),
		facility("transport-repeat", "transport", Keywords{Tokens: []string{"transport", "bus", "vehicle", "gadi", "van"}}),
		facility("labs-repeat", "labs", Keywords{Tokens: []string{"lab"}, Phrases: []string{"laboratory", "computer"}}),
		{
			Name:    "fees",
			Match:   keywords(feeWords),
			Respond: respondFees,
		},
		levelListing("ug-courses", models.LevelUG, ugWords),
		levelListing("pg-courses", models.LevelPG, pgWords),
		levelListing("diploma-courses", models.LevelDiploma, diplomaWords),
		{
			Name: "course-category",
			Match: func(q *Query, _ *models.KnowledgeBase) bool {
				return courseMentionWords.In(q) && !ugWords.In(q) && !pgWords.In(q) && !diplomaWords.In(q)
			},
			Respond: func(*Query, *models.KnowledgeBase) (string, bool) { return ReplyCategory, true },
		},
		canned("admission-deadline", deadlineWords, replyAdmissionDeadline),
		canned("admission-process", admissionWords, replyAdmissionProcess),
		canned("semester-system", semesterWords, replySemesterSystem),
		canned("attendance", attendanceWords, replyAttendance),
		canned("exam-pattern", examWords, replyExamPattern),
		canned("scholarship", scholarWords, replyScholarship),
		canned("placement", placementWords, replyPlacement),
		canned("gallery", galleryWords, func(*models.KnowledgeBase) string { return ReplyGallery }),
	}
}

func keywords(k Keywords) Predicate {
	return func(q *Query, _ *models.KnowledgeBase) bool { return k.In(q) }
}

func fixed(reply func(*models.KnowledgeBase) string) Responder {
	return func(_ *Query, kb *models.KnowledgeBase) (string, bool) { return reply(kb), true }
}

func canned(name string, k Keywords, reply func(*models.KnowledgeBase) string) Rule {
	return Rule{Name: name, Match: keywords(k), Respond: fixed(reply)}
}

func hasFacilities(kb *models.KnowledgeBase, keys ...string) bool {
	for _, key := range keys {
		if _, ok := kb.Facility(key); !ok {
			return false
		}
	}
	return true
}

func facility(name, key string, k Keywords) Rule {
	return Rule{
		Name: name,
		Match: func(q *Query, kb *models.KnowledgeBase) bool {
			return hasFacilities(kb, key) && k.In(q)
		},
		Respond: fixed(func(kb *models.KnowledgeBase) string { return replyFacility(kb, key) }),
	}
}

func namedCourse(name, course string, match func(q *Query) bool) Rule {
	return Rule{
		Name:  name,
		Match: func(q *Query, _ *models.KnowledgeBase) bool { return match(q) },
		Respond: func(_ *Query, kb *models.KnowledgeBase) (string, bool) {
			m, ok := FindCourse(kb, course)
			if !ok {
				return "", false
			}
			return replyCourse(kb, m.Course), true
		},
	}
}

func levelListing(name string, level models.CourseLevel, k Keywords) Rule {
	return Rule{
		Name: name,
		Match: func(q *Query, kb *models.KnowledgeBase) bool {
			return kb.Courses(level) != nil && k.In(q)
		},
		Respond: fixed(func(kb *models.KnowledgeBase) string { return replyCourseListing(kb, level) }),
	}
}

// respondFees answers fee questions: a named course first, then a listing
// for a named level, otherwise a prompt to pick a category.
func respondFees(q *Query, kb *models.KnowledgeBase) (string, bool) {
	if m, ok := courseInQuery(q, kb); ok {
		return replyCourseFee(m.Course), true
	}
	for _, lw := range levelWords {
		if lw.words.In(q) && kb.Courses(lw.level) != nil {
			return replyFeeListing(kb, lw.level), true
		}
	}
	return ReplyFeeCategory, true
}
