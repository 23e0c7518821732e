package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListColleagues(c *fiber.Ctx) error {
	colleagues, err := s.colleagues.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch colleagues", err)
	}
	return c.JSON(fiber.Map{"colleagues": colleagues})
}

func (s *Server) handleCreateColleague(c *fiber.Ctx) error {
	var in model.ColleagueInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add colleague", err)
	}
	if err := validate.Colleague(in); err != nil {
		return err
	}

	colleague, err := s.colleagues.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add colleague", err)
	}
	return c.JSON(fiber.Map{"colleague": colleague})
}
