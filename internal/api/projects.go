package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/storage"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListProjects(c *fiber.Ctx) error {
	projects, err := s.projects.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch projects", err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

func (s *Server) handleCreateProject(c *fiber.Ctx) error {
	var in model.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add project", err)
	}
	if err := validate.Project(in); err != nil {
		return err
	}

	project, err := s.projects.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add project", err)
	}
	return c.JSON(fiber.Map{"success": true, "project": project})
}

func (s *Server) handleUpdateProject(c *fiber.Ctx) error {
	var in model.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to update project", err)
	}
	if err := validate.Project(in); err != nil {
		return err
	}

	project, err := s.projects.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return apperr.NotFound("Project not found")
		}
		return apperr.Store("Failed to update project", err)
	}
	return c.JSON(fiber.Map{"success": true, "project": project})
}

func (s *Server) handleDeleteProject(c *fiber.Ctx) error {
	if err := s.projects.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperr.Store("Failed to delete project", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
