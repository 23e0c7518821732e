package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/validate"
)

func (s *Server) handleListActivities(c *fiber.Ctx) error {
	activities, err := s.activities.List(c.UserContext())
	if err != nil {
		return apperr.Store("Failed to fetch activities", err)
	}
	return c.JSON(fiber.Map{"activities": activities})
}

func (s *Server) handleCreateActivity(c *fiber.Ctx) error {
	var in model.ActivityInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Store("Failed to add activity", err)
	}
	if err := validate.Activity(in); err != nil {
		return err
	}

	activity, err := s.activities.Create(c.UserContext(), in)
	if err != nil {
		return apperr.Store("Failed to add activity", err)
	}
	return c.JSON(fiber.Map{"activity": activity})
}

func (s *Server) handleListNotifications(c *fiber.Ctx) error {
	notifications, err := s.activities.Unseen(c.UserContext(), c.Params("userId"))
	if err != nil {
		return apperr.Store("Failed to fetch notifications", err)
	}
	return c.JSON(fiber.Map{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

func (s *Server) handleMarkNotificationsSeen(c *fiber.Ctx) error {
	if err := s.activities.MarkSeen(c.UserContext(), c.Params("userId")); err != nil {
		return apperr.Store("Failed to mark notifications as seen", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
