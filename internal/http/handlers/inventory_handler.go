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

type InventoryHandler struct {
	Inv   *repos.InventoryRepo
	Props *services.PropertyService
}

func (h *InventoryHandler) GetByProperty(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Inv.EnsureForProperty(id); err != nil {
		applog.Error(c, "inventory.ensure.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load inventory"})
	}
	inv, err := h.Inv.GetByProperty(id)
	if err != nil {
		applog.Error(c, "inventory.get.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load inventory"})
	}
	return c.JSON(inv)
}

func (h *InventoryHandler) AddRoom(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}

	var req struct {
		RoomName string `json:"room_name"`
		RoomType string `json:"room_type"`
	}
	if err := c.BodyParser(&req); err != nil || req.RoomName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing room_name"})
	}

	invID, err := h.Inv.EnsureForProperty(id)
	if err != nil {
		applog.Error(c, "inventory.ensure.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load inventory"})
	}
	room, err := h.Inv.AddRoom(invID, req.RoomName, req.RoomType)
	if err != nil {
		applog.Error(c, "inventory.room.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add room"})
	}
	applog.Audit(c, "inventory.room.add", map[string]any{"property": id, "room": room.ID})
	return c.Status(fiber.StatusCreated).JSON(room)
}

func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	roomID, ok := validate.ID(c.Params("roomId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "room not found"})
	}

	var it domain.Item
	if err := c.BodyParser(&it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if it.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing name"})
	}
	if it.Value < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "value must not be negative"})
	}
	it.ID = uuid.NewString()
	it.RoomID = roomID

	if err := h.Inv.AddItem(it); err != nil {
		applog.Error(c, "inventory.item.fail", err, map[string]any{"room": roomID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add item"})
	}
	applog.Audit(c, "inventory.item.add", map[string]any{"room": roomID, "item": it.ID})
	return c.Status(fiber.StatusCreated).JSON(it)
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("itemId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	if err := h.Inv.DeleteItem(id); err != nil {
		applog.Error(c, "inventory.item.delete.fail", err, map[string]any{"item": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not delete item"})
	}
	applog.Audit(c, "inventory.item.delete", map[string]any{"item": id})
	return c.JSON(fiber.Map{"ok": true})
}
