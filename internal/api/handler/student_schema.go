package handler

import "github.com/campusops/student-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// studentRequest is the payload for both create and update: updates are full
// replacements of the three writable fields. Departments accepts a single
// string or an array of strings.
type studentRequest struct {
	Name        string             `json:"name"        validate:"required"`
	Departments domain.Departments `json:"departments"`
	Course      string             `json:"course"      validate:"required"`
}

type studentResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Departments domain.Departments `json:"departments"`
	Course      string             `json:"course"`
}

func toStudentResponse(s *domain.Student) studentResponse {
	return studentResponse{
		ID:          s.ID,
		Name:        s.Name,
		Departments: s.Departments,
		Course:      s.Course,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
