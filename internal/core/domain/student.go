package domain

import (
	"encoding/json"
	"errors"
)

var ErrStudentNotFound = errors.New("student not found")
var ErrInvalidStudentID = errors.New("invalid student id")

// Departments holds the departments a student belongs to. Clients send
// either a single string or an array of strings, so decoding accepts both.
type Departments []string

func (d *Departments) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = Departments{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*d = Departments(many)
	return nil
}

// Student is the record managed by the CRUD surface.
type Student struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Departments Departments `json:"departments"`
	Course      string      `json:"course"`
}
