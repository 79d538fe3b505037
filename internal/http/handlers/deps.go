package handlers

import (
	"nectar/internal/repos"
	"nectar/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PropertyHandler  *PropertyHandler
	TenantHandler    *TenantHandler
	EventHandler     *EventHandler
	PaymentHandler   *PaymentHandler
	InventoryHandler *InventoryHandler
}

func NewDeps(db *sqlx.DB, sync services.SyncNotifier) *Deps {
	propRepo := repos.NewPropertyRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	tenantRepo := repos.NewTenantRepo(db)
	eventRepo := repos.NewEventRepo(db)
	payRepo := repos.NewPaymentRepo(db)

	propSvc := services.NewPropertyService(propRepo, invRepo, sync)

	return &Deps{
		PropertyHandler:  &PropertyHandler{Props: propSvc},
		TenantHandler:    &TenantHandler{Tenants: tenantRepo, Props: propSvc},
		EventHandler:     &EventHandler{Events: eventRepo, Props: propSvc},
		PaymentHandler:   &PaymentHandler{Payments: payRepo, Props: propSvc},
		InventoryHandler: &InventoryHandler{Inv: invRepo, Props: propSvc},
	}
}
