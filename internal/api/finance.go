package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/validate"
)

// The cash and other-expenses singletons report 0 until a balance has
// been recorded, so fresh workspaces render without a setup step.

func (s *Server) handleGetCash(c *fiber.Ctx) error {
	balance, err := s.finance.GetCash(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch cash", err)
	}
	if balance == nil {
		return c.JSON(fiber.Map{"cash": 0})
	}
	return c.JSON(fiber.Map{"cash": balance})
}

func (s *Server) handlePutCash(c *fiber.Ctx) error {
	var in model.AmountInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to update cash", err)
	}
	if err := validate.Amount(in); err != nil {
		return err
	}

	balance, err := s.finance.PutCash(c.UserContext(), in.Amount.Float())
	if err != nil {
		return apperr.Store("Failed to update cash", err)
	}
	return c.JSON(fiber.Map{"success": true, "cash": balance})
}

func (s *Server) handleGetOtherExpenses(c *fiber.Ctx) error {
	balance, err := s.finance.GetOtherExpenses(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch other expenses", err)
	}
	if balance == nil {
		return c.JSON(fiber.Map{"expenses": 0})
	}
	return c.JSON(fiber.Map{"expenses": balance})
}

func (s *Server) handlePutOtherExpenses(c *fiber.Ctx) error {
	var in model.AmountInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to update other expenses", err)
	}
	if err := validate.Amount(in); err != nil {
		return err
	}

	balance, err := s.finance.PutOtherExpenses(c.UserContext(), in.Amount.Float())
	if err != nil {
		return apperr.Store("Failed to update other expenses", err)
	}
	return c.JSON(fiber.Map{"success": true, "expenses": balance})
}
