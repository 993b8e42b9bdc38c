package main

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

func (h *handler) PendingTeachers(c fiber.Ctx) error {
	teachers, err := h.store.PendingTeachers()
	if err != nil {
		h.log.Error().Err(err).Msg("list pending teachers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"teachers": teachers})
}

type approveTeacherRequest struct {
	TeacherID uint `json:"teacher_id" validate:"required"`
}

func (h *handler) ApproveTeacher(c fiber.Ctx) error {
	var req approveTeacherRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "error parsing body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	if err := h.store.ApproveTeacher(req.TeacherID); err != nil {
		h.log.Error().Err(err).Msg("approve teacher")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"message": "Teacher approved successfully"})
}

type createClassRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateClass inserts and then responds with the full class list, so the
// admin UI can refresh from one round trip.
func (h *handler) CreateClass(c fiber.Ctx) error {
	var req createClassRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "error parsing body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	if _, err := h.store.CreateClass(req.Name); err != nil {
		h.log.Error().Err(err).Msg("create class")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return h.ListClasses(c)
}

type createStudentRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	ClassID  uint   `json:"class_id" validate:"required"`
}

func (h *handler) CreateStudent(c fiber.Ctx) error {
	var req createStudentRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "error parsing body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	student := &Student{Name: req.Name, Username: req.Username, Password: hash, ClassID: req.ClassID}
	if err := h.store.CreateStudent(student); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Username already exists"})
		case errors.Is(err, ErrReferentialConflict):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Unknown class"})
		}
		h.log.Error().Err(err).Msg("create student")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Student created", "student": rosterEntry{ID: student.ID, Name: student.Name, Username: student.Username}})
}

func (h *handler) DeleteClass(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid class id"})
	}

	if err := h.store.DeleteClass(uint(id)); err != nil {
		if errors.Is(err, ErrReferentialConflict) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot delete class, it may be in use."})
		}
		h.log.Error().Err(err).Msg("delete class")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"message": "Class deleted"})
}
