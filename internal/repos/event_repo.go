package repos

import (
	"nectar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type EventRepo struct{ db *sqlx.DB }

func NewEventRepo(db *sqlx.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) ListByProperty(propertyID string) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.Select(&out, `
	  SELECT id, property_id, event_name,
	         COALESCE(event_details,'') AS event_details, COALESCE(tenant,'') AS tenant,
	         COALESCE(lease_date,'') AS lease_date, COALESCE(checkout,'') AS checkout,
	         COALESCE(incoming_amount,0) AS incoming_amount,
	         COALESCE(outgoing_amount,0) AS outgoing_amount,
	         COALESCE(status,'') AS status, created_at
	  FROM events
	  WHERE property_id = ?
	  ORDER BY created_at DESC
	`, propertyID)
	return out, err
}

func (r *EventRepo) Create(e domain.Event) error {
	_, err := r.db.Exec(`
	  INSERT INTO events(id, property_id, event_name, event_details, tenant,
	                     lease_date, checkout, incoming_amount, outgoing_amount, status)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, e.ID, e.PropertyID, e.EventName, e.EventDetails, e.Tenant,
		e.LeaseDate, e.Checkout, e.IncomingAmount, e.OutgoingAmount, e.Status)
	return err
}

func (r *EventRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM events WHERE id=?`, id)
	return err
}
