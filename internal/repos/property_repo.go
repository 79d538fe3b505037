package repos

import (
	"encoding/json"
	"fmt"

	"nectar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PropertyRepo struct{ db *sqlx.DB }

func NewPropertyRepo(db *sqlx.DB) *PropertyRepo { return &PropertyRepo{db: db} }

func unpackProfile(p *domain.Property) error {
	if p.ProfileJSON == "" {
		p.ProfileJSON = "{}"
	}
	return json.Unmarshal([]byte(p.ProfileJSON), &p.Profile)
}

func (r *PropertyRepo) List(limit, offset int) ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `
	  SELECT id, owner_id, title, content, profile_json, external_id,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM properties
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if err := unpackProfile(&out[i]); err != nil {
			return nil, fmt.Errorf("property %s: bad profile: %w", out[i].ID, err)
		}
	}
	return out, nil
}

func (r *PropertyRepo) Get(id string) (domain.Property, error) {
	var p domain.Property
	err := r.db.Get(&p, `
	  SELECT id, owner_id, title, content, profile_json, external_id,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM properties
	  WHERE id = ?
	`, id)
	if err != nil {
		return domain.Property{}, err
	}
	if err := unpackProfile(&p); err != nil {
		return domain.Property{}, fmt.Errorf("property %s: bad profile: %w", p.ID, err)
	}
	return p, nil
}

func (r *PropertyRepo) Create(p *domain.Property) error {
	b, err := json.Marshal(p.Profile)
	if err != nil {
		return err
	}
	p.ProfileJSON = string(b)
	_, err = r.db.Exec(`
	  INSERT INTO properties(id, owner_id, title, content, profile_json)
	  VALUES(?,?,?,?,?)
	`, p.ID, p.OwnerID, p.Title, p.Content, p.ProfileJSON)
	return err
}

// Update writes title/content and merges the profile bag field by field:
// only non-empty incoming values overwrite stored ones, matching how the
// dashboard submits partial profile groups.
func (r *PropertyRepo) Update(id, title, content string, profile domain.Profile) (domain.Property, error) {
	cur, err := r.Get(id)
	if err != nil {
		return domain.Property{}, err
	}

	merged := mergeProfiles(cur.Profile, profile)
	b, err := json.Marshal(merged)
	if err != nil {
		return domain.Property{}, err
	}

	if title == "" {
		title = cur.Title
	}
	if content == "" {
		content = cur.Content
	}

	_, err = r.db.Exec(`
	  UPDATE properties
	  SET title=?, content=?, profile_json=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, title, content, string(b), id)
	if err != nil {
		return domain.Property{}, err
	}
	return r.Get(id)
}

func mergeProfiles(base, in domain.Profile) domain.Profile {
	pick := func(old, new string) string {
		if new != "" {
			return new
		}
		return old
	}
	return domain.Profile{
		PropertyType:     pick(base.PropertyType, in.PropertyType),
		Furnished:        pick(base.Furnished, in.Furnished),
		MarketingStatus:  pick(base.MarketingStatus, in.MarketingStatus),
		Category:         pick(base.Category, in.Category),
		Beds:             pick(base.Beds, in.Beds),
		Bathrooms:        pick(base.Bathrooms, in.Bathrooms),
		LivingRooms:      pick(base.LivingRooms, in.LivingRooms),
		Parking:          pick(base.Parking, in.Parking),
		Price:            pick(base.Price, in.Price),
		PaymentFrequency: pick(base.PaymentFrequency, in.PaymentFrequency),
		Location:         pick(base.Location, in.Location),
		Postcode:         pick(base.Postcode, in.Postcode),
		HouseNumber:      pick(base.HouseNumber, in.HouseNumber),
	}
}

// SetExternalID records the WordPress post id after a confirmed remote write.
// An id of zero is rejected so a failed sync can never null out the link.
func (r *PropertyRepo) SetExternalID(id string, externalID int64) error {
	if externalID <= 0 {
		return fmt.Errorf("refusing to set external id %d on property %s", externalID, id)
	}
	_, err := r.db.Exec(`
	  UPDATE properties SET external_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, externalID, id)
	return err
}

func (r *PropertyRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM properties WHERE id=?`, id)
	return err
}
