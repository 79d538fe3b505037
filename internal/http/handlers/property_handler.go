package handlers

import (
	"errors"

	"nectar/internal/domain"
	applog "nectar/internal/log"
	"nectar/internal/services"
	"nectar/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	Props *services.PropertyService
}

type propertyRequest struct {
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Profile domain.Profile `json:"profile"`
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	props, err := h.Props.List(limit, offset)
	if err != nil {
		applog.Error(c, "property.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list properties"})
	}
	return c.JSON(props)
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	p, err := h.Props.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	return c.JSON(p)
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req propertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	title, ok := validate.Title(req.Title)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing or oversized title"})
	}
	if _, ok := validate.Postcode(req.Profile.Postcode); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid postcode"})
	}

	u := currentUser(c)
	p, err := h.Props.Create(u.ID, title, req.Content, req.Profile)
	if err != nil {
		if errors.Is(err, services.ErrBadTitle) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "property.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create property"})
	}

	applog.Audit(c, "property.create", map[string]any{"id": p.ID, "owner": u.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	var req propertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if _, ok := validate.Postcode(req.Profile.Postcode); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid postcode"})
	}

	p, err := h.Props.Update(id, req.Title, req.Content, req.Profile)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}

	applog.Audit(c, "property.update", map[string]any{"id": p.ID})
	return c.JSON(p)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if err := h.Props.Delete(id); err != nil {
		applog.Error(c, "property.delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not delete property"})
	}
	applog.Audit(c, "property.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"ok": true})
}
