package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-api/internal/api/metrics"
	"github.com/campusops/student-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for student CRUD operations.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List handles GET /students — returns all records, unfiltered.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Success      200  {array}   studentResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]studentResponse, 0, len(students))
	for _, s := range students {
		resp = append(resp, toStudentResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /students/:id.
//
// @Summary      Get a student by id
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  studentResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Create handles POST /students.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      studentRequest  true  "Student details"
// @Success      201   {object}  studentResponse
// @Failure      400   {object}  errorResponse
// @Router       /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.Create(c.Request().Context(), ports.StudentInput{
		Name:        req.Name,
		Departments: req.Departments,
		Course:      req.Course,
	})
	if err != nil {
		return err
	}

	metrics.StudentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toStudentResponse(student))
}

// Update handles PUT /students/:id — a full replace of the writable fields.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Student id"
// @Param        body  body      studentRequest  true  "Replacement student details"
// @Success      200   {object}  studentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.StudentInput{
		Name:        req.Name,
		Departments: req.Departments,
		Course:      req.Course,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(student))
}

// Delete handles DELETE /students/:id.
//
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "student deleted successfully"})
}
