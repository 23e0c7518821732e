package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/storage"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListAssets(c *fiber.Ctx) error {
	assets, err := s.assets.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch assets", err)
	}
	return c.JSON(fiber.Map{"assets": assets})
}

func (s *Server) handleCreateAsset(c *fiber.Ctx) error {
	var in model.ValuationInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add asset", err)
	}
	if err := validate.Valuation(in); err != nil {
		return err
	}

	asset, err := s.assets.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add asset", err)
	}
	return c.JSON(fiber.Map{"success": true, "asset": asset})
}

func (s *Server) handleUpdateAsset(c *fiber.Ctx) error {
	var in model.ValuationInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to update asset", err)
	}
	if err := validate.Valuation(in); err != nil {
		return err
	}

	asset, err := s.assets.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return apperr.NotFound("Asset not found")
		}
		return apperr.Store("Failed to update asset", err)
	}
	return c.JSON(fiber.Map{"success": true, "asset": asset})
}

func (s *Server) handleDeleteAsset(c *fiber.Ctx) error {
	if err := s.assets.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperr.Store("Failed to delete asset", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
