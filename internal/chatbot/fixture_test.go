package chatbot

import (
	"context"
	"sync"
	"time"

	"saicollege/internal/models"
)

func sampleKB() *models.KnowledgeBase {
	return &models.KnowledgeBase{
		Name:          "Sai College",
		Address:       "Sector 6, Bhilai",
		Phone:         "0788-2222222",
		Email:         "info@saicollege.example",
		Website:       "https://saicollege.example",
		MapLink:       "https://maps.example/sai",
		Accreditation: "NAAC Accredited",
		Principal:     &models.Principal{Name: "Dr. A. Sharma", Education: "PhD Chemistry"},
		Director:      &models.Director{Name: "Mr. R. Gupta", Role: "MBA", Message: "Welcome"},
		Facilities: map[string]string{
			"transport":  "Buses on 12 routes",
			"hostel":     "Separate hostels for boys and girls",
			"labs":       "Computer and science labs with wifi",
			"library":    "20,000 books and a reading room",
			"sports":     "Cricket ground and indoor games",
			"incubation": "Kalakriti incubation centre",
		},
		UGCourses: models.CourseList{
			{Name: "BA", Duration: "3 Years", Fee: "₹8,000/year", Description: "Arts"},
			{Name: "BBA", Duration: "3 Years", Fee: "₹20,000/year", Description: "Business"},
			{Name: "BCA", Duration: "3 Years", Fee: "₹22,000/year", Description: "Computer applications"},
			{Name: "B.Com", Duration: "3 Years", Fee: "₹12,000/year", Description: "Commerce"},
			{Name: "BSc Biotech", Duration: "3 Years", Fee: "₹25,000/year", Description: "Biotechnology"},
			{Name: "BSc CS", Duration: "3 Years", Fee: "₹21,000/year", Description: "Computer science"},
			{Name: "BSc Maths/Bio", Duration: "3 Years", Fee: "₹15,000/year", Description: "Maths or biology"},
		},
		PGCourses: models.CourseList{
			{Name: "MSc Biotech", Duration: "2 Years", Fee: "₹35,000/year", Description: "Advanced biotech"},
			{Name: "MSc CS", Duration: "2 Years", Fee: "₹30,000/year", Description: "Advanced CS"},
			{Name: "MSc Chemistry", Duration: "2 Years", Fee: "₹28,000/year", Description: "Chemistry"},
			{Name: "M.Com", Duration: "2 Years", Fee: "₹18,000/year", Description: "Commerce"},
			{Name: "M.A. (English)", Duration: "2 Years", Fee: "₹14,000/year", Description: "English literature"},
			{Name: "M.Lib. (ISc)", Duration: "1 Year", Fee: "₹16,000/year", Description: "Library science"},
		},
		DiplomaCourses: models.CourseList{
			{Name: "DCA", Duration: "1 Year", Fee: "₹9,000", Description: "Diploma in computer applications"},
			{Name: "PGDCA", Duration: "1 Year", Fee: "₹14,000", Description: "PG diploma in computer applications"},
		},
	}
}

type recordedQuery struct {
	at    time.Time
	query string
}

type memoryRecorder struct {
	mu      sync.Mutex
	entries []recordedQuery
	err     error
}

func (m *memoryRecorder) Record(_ context.Context, at time.Time, query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, recordedQuery{at: at, query: query})
	return m.err
}
