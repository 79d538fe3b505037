package handlers

import (
	"nectar/internal/domain"
	applog "nectar/internal/log"
	"nectar/internal/repos"
	"nectar/internal/services"
	"nectar/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EventHandler struct {
	Events *repos.EventRepo
	Props  *services.PropertyService
}

func (h *EventHandler) ListByProperty(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	events, err := h.Events.ListByProperty(id)
	if err != nil {
		applog.Error(c, "event.list.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list events"})
	}
	return c.JSON(events)
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}

	var e domain.Event
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if e.EventName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing event_name"})
	}
	e.ID = uuid.NewString()
	e.PropertyID = id

	if err := h.Events.Create(e); err != nil {
		applog.Error(c, "event.create.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create event"})
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}
