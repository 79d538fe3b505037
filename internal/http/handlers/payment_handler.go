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

type PaymentHandler struct {
	Payments *repos.PaymentRepo
	Props    *services.PropertyService
}

func (h *PaymentHandler) ListByProperty(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	payments, err := h.Payments.ListByProperty(id)
	if err != nil {
		applog.Error(c, "payment.list.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list payments"})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}

	var p domain.Payment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if p.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must not be negative"})
	}
	p.ID = uuid.NewString()
	p.PropertyID = id
	if p.Status == "" {
		p.Status = "Pending"
	}

	if err := h.Payments.Create(p); err != nil {
		applog.Error(c, "payment.create.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create payment"})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
	}
	if err := h.Payments.MarkPaid(id); err != nil {
		applog.Error(c, "payment.paid.fail", err, map[string]any{"payment": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update payment"})
	}
	applog.Audit(c, "payment.paid", map[string]any{"payment": id})
	return c.JSON(fiber.Map{"ok": true})
}
