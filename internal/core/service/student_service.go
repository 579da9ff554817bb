package service

import (
	"context"

	"github.com/campusops/student-api/internal/core/domain"
	"github.com/campusops/student-api/internal/core/ports"
)

// StudentService implements the CRUD use cases over the student repository.
type StudentService struct {
	repo ports.StudentRepository
}

func NewStudentService(repo ports.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.repo.List(ctx)
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) Create(ctx context.Context, input ports.StudentInput) (*domain.Student, error) {
	return s.repo.Create(ctx, &domain.Student{
		Name:        input.Name,
		Departments: input.Departments,
		Course:      input.Course,
	})
}

func (s *StudentService) Update(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	return s.repo.Update(ctx, &domain.Student{
		ID:          id,
		Name:        input.Name,
		Departments: input.Departments,
		Course:      input.Course,
	})
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
