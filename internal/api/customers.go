package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/storage"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListCustomers(c *fiber.Ctx) error {
	customers, err := s.customers.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch customers", err)
	}
	return c.JSON(fiber.Map{"customers": customers})
}

func (s *Server) handleCreateCustomer(c *fiber.Ctx) error {
	var in model.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add customer", err)
	}
	if err := validate.NewCustomer(in); err != nil {
		return err
	}

	customer, err := s.customers.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add customer", err)
	}
	return c.JSON(fiber.Map{"success": true, "customer": customer})
}

func (s *Server) handleUpdateCustomer(c *fiber.Ctx) error {
	var in model.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to update customer", err)
	}
	if err := validate.UpdatedCustomer(in); err != nil {
		return err
	}

	customer, err := s.customers.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return apperr.NotFound("Customer not found")
		}
		return apperr.Store("Failed to update customer", err)
	}
	return c.JSON(fiber.Map{"success": true, "customer": customer})
}

func (s *Server) handleDeleteCustomer(c *fiber.Ctx) error {
	if err := s.customers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperr.Store("Failed to delete customer", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
