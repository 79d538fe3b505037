package repos

import (
	"nectar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) ListByProperty(propertyID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.Select(&out, `
	  SELECT id, property_id, amount,
	         COALESCE(category,'') AS category, COALESCE(payment_type,'') AS payment_type,
	         COALESCE(status,'') AS status, COALESCE(due_date,'') AS due_date,
	         COALESCE(tenant,'') AS tenant, created_at
	  FROM payments
	  WHERE property_id = ?
	  ORDER BY created_at DESC
	`, propertyID)
	return out, err
}

func (r *PaymentRepo) Create(p domain.Payment) error {
	_, err := r.db.Exec(`
	  INSERT INTO payments(id, property_id, amount, category, payment_type, status, due_date, tenant)
	  VALUES(?,?,?,?,?,?,?,?)
	`, p.ID, p.PropertyID, p.Amount, p.Category, p.PaymentType, p.Status, p.DueDate, p.Tenant)
	return err
}

// MarkPaid flips a pending payment; paid payments stay paid.
func (r *PaymentRepo) MarkPaid(id string) error {
	_, err := r.db.Exec(`UPDATE payments SET status='Paid' WHERE id=?`, id)
	return err
}
