package domain

import (
	"encoding/json"
	"testing"
)

func TestDepartments_UnmarshalString(t *testing.T) {
	var s Student
	if err := json.Unmarshal([]byte(`{"name":"amina","departments":"CS","course":"algorithms"}`), &s); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(s.Departments) != 1 || s.Departments[0] != "CS" {
		t.Fatalf("unexpected departments: %v", s.Departments)
	}
}

func TestDepartments_UnmarshalArray(t *testing.T) {
	var s Student
	if err := json.Unmarshal([]byte(`{"name":"amina","departments":["CS","Math"],"course":"algorithms"}`), &s); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(s.Departments) != 2 || s.Departments[0] != "CS" || s.Departments[1] != "Math" {
		t.Fatalf("unexpected departments: %v", s.Departments)
	}
}

func TestDepartments_UnmarshalInvalid(t *testing.T) {
	var s Student
	if err := json.Unmarshal([]byte(`{"departments":42}`), &s); err == nil {
		t.Fatalf("expected error for numeric departments")
	}
}

func TestSession_Capabilities(t *testing.T) {
	sess := &Session{}
	if sess.Authenticated() || sess.IsAdmin() {
		t.Fatalf("empty session should carry no capabilities")
	}

	sess.UserID = "u1"
	sess.Role = RoleStudent
	if !sess.Authenticated() {
		t.Fatalf("expected authenticated")
	}
	if sess.IsAdmin() {
		t.Fatalf("student role must not be admin")
	}

	sess.Role = RoleAdmin
	if !sess.IsAdmin() {
		t.Fatalf("expected admin")
	}
}
