package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/campusops/student-api/internal/core/domain"
	"github.com/campusops/student-api/internal/core/ports"
)

type stubStudentRepo struct {
	students map[string]*domain.Student
	nextID   int
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: make(map[string]*domain.Student)}
}

func cloneStudent(s *domain.Student) *domain.Student {
	clone := *s
	clone.Departments = append(domain.Departments(nil), s.Departments...)
	return &clone
}

func (r *stubStudentRepo) List(_ context.Context) ([]*domain.Student, error) {
	out := make([]*domain.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, cloneStudent(s))
	}
	return out, nil
}

func (r *stubStudentRepo) FindByID(_ context.Context, id string) (*domain.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return cloneStudent(s), nil
}

func (r *stubStudentRepo) Create(_ context.Context, s *domain.Student) (*domain.Student, error) {
	r.nextID++
	created := cloneStudent(s)
	created.ID = fmt.Sprintf("s%d", r.nextID)
	r.students[created.ID] = cloneStudent(created)
	return created, nil
}

func (r *stubStudentRepo) Update(_ context.Context, s *domain.Student) (*domain.Student, error) {
	if _, ok := r.students[s.ID]; !ok {
		return nil, domain.ErrStudentNotFound
	}
	r.students[s.ID] = cloneStudent(s)
	return cloneStudent(s), nil
}

func (r *stubStudentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.students[id]; !ok {
		return domain.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

func TestStudentService_CreateThenGet(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo())

	input := ports.StudentInput{
		Name:        "amina",
		Departments: []string{"CS", "Math"},
		Course:      "algorithms",
	}
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != input.Name || got.Course != input.Course {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if !reflect.DeepEqual([]string(got.Departments), input.Departments) {
		t.Fatalf("departments mismatch: %v", got.Departments)
	}
}

func TestStudentService_UpdateMissing(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo())

	_, err := svc.Update(context.Background(), "absent", ports.StudentInput{Name: "x", Course: "y"})
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentService_UpdateReplacesFields(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo())

	created, err := svc.Create(context.Background(), ports.StudentInput{
		Name: "amina", Departments: []string{"CS"}, Course: "algorithms",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.StudentInput{
		Name: "amina k", Departments: []string{"Physics"}, Course: "mechanics",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "amina k" || updated.Course != "mechanics" {
		t.Fatalf("update not applied: %+v", updated)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Course != "mechanics" || len(got.Departments) != 1 || got.Departments[0] != "Physics" {
		t.Fatalf("get does not reflect update: %+v", got)
	}
}

func TestStudentService_DeleteThenGet(t *testing.T) {
	svc := NewStudentService(newStubStudentRepo())

	created, err := svc.Create(context.Background(), ports.StudentInput{Name: "amina", Course: "algorithms"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound for second delete, got %v", err)
	}
}
