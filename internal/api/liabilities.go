package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/storage"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListLiabilities(c *fiber.Ctx) error {
	liabilities, err := s.liabilities.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch liabilities", err)
	}
	return c.JSON(fiber.Map{"liabilities": liabilities})
}

func (s *Server) handleCreateLiability(c *fiber.Ctx) error {
	var in model.ValuationInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add liability", err)
	}
	if err := validate.Valuation(in); err != nil {
		return err
	}

	liability, err := s.liabilities.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add liability", err)
	}
	return c.JSON(fiber.Map{"success": true, "liability": liability})
}

func (s *Server) handleUpdateLiability(c *fiber.Ctx) error {
	var in model.ValuationInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to update liability", err)
	}
	if err := validate.Valuation(in); err != nil {
		return err
	}

	liability, err := s.liabilities.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return apperr.NotFound("Liability not found")
		}
		return apperr.Store("Failed to update liability", err)
	}
	return c.JSON(fiber.Map{"success": true, "liability": liability})
}

func (s *Server) handleDeleteLiability(c *fiber.Ctx) error {
	if err := s.liabilities.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperr.Store("Failed to delete liability", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
