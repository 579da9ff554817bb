package ports

import (
	"context"

	"github.com/campusops/student-api/internal/core/domain"
)

// StudentInput carries the writable fields of a student record. Create and
// Update both take the full set: updates are whole-record replacements.
type StudentInput struct {
	Name        string
	Departments []string
	Course      string
}

// StudentService defines use-case operations over student records.
type StudentService interface {
	List(ctx context.Context) ([]*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Create(ctx context.Context, input StudentInput) (*domain.Student, error)
	Update(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}
