package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListInvestors(c *fiber.Ctx) error {
	investors, err := s.investors.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch investors", err)
	}
	return c.JSON(fiber.Map{"investors": investors})
}

func (s *Server) handleCreateInvestor(c *fiber.Ctx) error {
	var in model.InvestorInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add investor", err)
	}
	if err := validate.Investor(in); err != nil {
		return err
	}

	investor, err := s.investors.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add investor", err)
	}
	return c.JSON(fiber.Map{"investor": investor})
}
