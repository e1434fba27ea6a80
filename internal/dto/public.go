package dto

import "saicollege/internal/models"

type CollegeInfoResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	MapLink string `json:"map_link"`
}

type CoursesResponse struct {
	Undergraduate models.CourseList `json:"undergraduate" swaggertype:"object"`
	Postgraduate  models.CourseList `json:"postgraduate" swaggertype:"object"`
	Diploma       models.CourseList `json:"diploma" swaggertype:"object"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
