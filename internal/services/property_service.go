package services

import (
	"errors"
	"fmt"

	"nectar/internal/domain"
	"nectar/internal/repos"

	"github.com/google/uuid"
)

var ErrBadTitle = errors.New("missing or oversized title")

// SyncNotifier receives fire-and-forget hooks after a local commit.
// The wpsync engine implements it; its calls must never block or fail
// the request that triggered the mutation.
type SyncNotifier interface {
	OnPropertyCreated(p domain.Property)
	OnPropertyUpdated(p domain.Property)
}

type PropertyService struct {
	Props *repos.PropertyRepo
	Inv   *repos.InventoryRepo
	Sync  SyncNotifier
}

func NewPropertyService(props *repos.PropertyRepo, inv *repos.InventoryRepo, sync SyncNotifier) *PropertyService {
	return &PropertyService{Props: props, Inv: inv, Sync: sync}
}

// Create commits the new property and its seeded inventory locally,
// then hands the record to the sync engine. The caller's response never
// waits on the remote site.
func (s *PropertyService) Create(ownerID, title, content string, profile domain.Profile) (domain.Property, error) {
	if title == "" || len(title) > 200 {
		return domain.Property{}, ErrBadTitle
	}

	p := domain.Property{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
		Content: content,
		Profile: profile,
	}
	if err := s.Props.Create(&p); err != nil {
		return domain.Property{}, err
	}
	if _, err := s.Inv.EnsureForProperty(p.ID); err != nil {
		return domain.Property{}, fmt.Errorf("seed inventory: %w", err)
	}

	saved, err := s.Props.Get(p.ID)
	if err != nil {
		return domain.Property{}, err
	}

	s.Sync.OnPropertyCreated(saved)
	return saved, nil
}

// Update merges the submitted fields into the stored record and then
// schedules an update push. Each edit schedules its own attempt; rapid
// edits may overlap or reorder on the remote side.
func (s *PropertyService) Update(id, title, content string, profile domain.Profile) (domain.Property, error) {
	saved, err := s.Props.Update(id, title, content, profile)
	if err != nil {
		return domain.Property{}, err
	}

	s.Sync.OnPropertyUpdated(saved)
	return saved, nil
}

func (s *PropertyService) Get(id string) (domain.Property, error) { return s.Props.Get(id) }

func (s *PropertyService) List(limit, offset int) ([]domain.Property, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Props.List(limit, offset)
}

func (s *PropertyService) Delete(id string) error { return s.Props.Delete(id) }
