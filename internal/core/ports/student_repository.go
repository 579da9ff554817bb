package ports

import (
	"context"

	"github.com/campusops/student-api/internal/core/domain"
)

// StudentRepository defines persistence operations for student records.
type StudentRepository interface {
	List(ctx context.Context) ([]*domain.Student, error)
	// FindByID retrieves one student. A syntactically invalid id yields
	// domain.ErrInvalidStudentID; a well-formed but absent id yields
	// domain.ErrStudentNotFound.
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
	// Update replaces name, departments and course in full and returns the
	// updated record.
	Update(ctx context.Context, s *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}
