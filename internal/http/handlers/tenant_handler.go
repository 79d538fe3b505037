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

type TenantHandler struct {
	Tenants *repos.TenantRepo
	Props   *services.PropertyService
}

func (h *TenantHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	tenants, err := h.Tenants.List(limit, offset)
	if err != nil {
		applog.Error(c, "tenant.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list tenants"})
	}
	return c.JSON(tenants)
}

func (h *TenantHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tenant not found"})
	}
	t, err := h.Tenants.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tenant not found"})
	}
	return c.JSON(t)
}

func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var t domain.Tenant
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if t.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing name"})
	}
	if t.Email != "" {
		email, ok := validate.Email(t.Email)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
		}
		t.Email = email
	}
	t.ID = uuid.NewString()

	if err := h.Tenants.Create(t); err != nil {
		applog.Error(c, "tenant.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create tenant"})
	}
	applog.Audit(c, "tenant.create", map[string]any{"id": t.ID})
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *TenantHandler) ListTenancies(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	tenancies, err := h.Tenants.ListTenancies(id)
	if err != nil {
		applog.Error(c, "tenancy.list.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list tenancies"})
	}
	return c.JSON(tenancies)
}

func (h *TenantHandler) CreateTenancy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}
	if _, err := h.Props.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "property not found"})
	}

	var t domain.Tenancy
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if _, err := h.Tenants.Get(t.TenantID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown tenant"})
	}
	status, ok := validate.TenancyStatus(t.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	t.ID = uuid.NewString()
	t.PropertyID = id
	t.Status = status

	if err := h.Tenants.CreateTenancy(t); err != nil {
		applog.Error(c, "tenancy.create.fail", err, map[string]any{"property": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create tenancy"})
	}
	applog.Audit(c, "tenancy.create", map[string]any{"id": t.ID, "property": id, "tenant": t.TenantID})
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *TenantHandler) EndTenancy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tenancy not found"})
	}
	var req struct {
		EndDate string `json:"end_date"`
	}
	if err := c.BodyParser(&req); err != nil || req.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing end_date"})
	}
	if err := h.Tenants.EndTenancy(id, req.EndDate); err != nil {
		applog.Error(c, "tenancy.end.fail", err, map[string]any{"tenancy": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not end tenancy"})
	}
	applog.Audit(c, "tenancy.end", map[string]any{"tenancy": id})
	return c.JSON(fiber.Map{"ok": true})
}
