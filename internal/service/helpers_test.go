package service

import (
	"context"
	"errors"
	"sync"

	"saicollege/internal/models"
)

type memoryStore struct {
	mu      sync.Mutex
	kb      *models.KnowledgeBase
	loadErr error
	saveErr error
	saves   int
}

func (s *memoryStore) Load(ctx context.Context) (*models.KnowledgeBase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.kb == nil {
		return &models.KnowledgeBase{}, nil
	}
	return s.kb.Clone(), nil
}

func (s *memoryStore) Save(ctx context.Context, kb *models.KnowledgeBase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.kb = kb.Clone()
	s.saves++
	return nil
}

var errStoreDown = errors.New("store down")

func collegeKB() *models.KnowledgeBase {
	return &models.KnowledgeBase{
		Name:    "Sai College",
		Address: "Sector 6, Bhilai",
		Phone:   "0788-2222222",
		Email:   "info@saicollege.example",
		Website: "https://saicollege.example",
		MapLink: "https://maps.example/sai",
		Facilities: map[string]string{
			"library": "20,000 books",
		},
		UGCourses: models.CourseList{
			{Name: "BCA", Duration: "3 Years", Fee: "₹22,000/year", Description: "Computer applications"},
		},
	}
}
