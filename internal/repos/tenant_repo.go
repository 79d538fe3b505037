package repos

import (
	"nectar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TenantRepo struct{ db *sqlx.DB }

func NewTenantRepo(db *sqlx.DB) *TenantRepo { return &TenantRepo{db: db} }

func (r *TenantRepo) List(limit, offset int) ([]domain.Tenant, error) {
	var out []domain.Tenant
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(email,'') AS email, COALESCE(phone,'') AS phone,
	         COALESCE(date_of_birth,'') AS date_of_birth,
	         COALESCE(employment_status,'') AS employment_status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tenants
	  ORDER BY name
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *TenantRepo) Get(id string) (domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.Get(&t, `
	  SELECT id, name, COALESCE(email,'') AS email, COALESCE(phone,'') AS phone,
	         COALESCE(date_of_birth,'') AS date_of_birth,
	         COALESCE(employment_status,'') AS employment_status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tenants
	  WHERE id = ?
	`, id)
	return t, err
}

func (r *TenantRepo) Create(t domain.Tenant) error {
	_, err := r.db.Exec(`
	  INSERT INTO tenants(id, name, email, phone, date_of_birth, employment_status)
	  VALUES(?,?,?,?,?,?)
	`, t.ID, t.Name, t.Email, t.Phone, t.DateOfBirth, t.EmploymentStatus)
	return err
}

func (r *TenantRepo) ListTenancies(propertyID string) ([]domain.Tenancy, error) {
	var out []domain.Tenancy
	err := r.db.Select(&out, `
	  SELECT id, tenant_id, property_id,
	         COALESCE(start_date,'') AS start_date, COALESCE(end_date,'') AS end_date,
	         COALESCE(status,'') AS status, created_at
	  FROM tenancies
	  WHERE property_id = ?
	  ORDER BY created_at DESC
	`, propertyID)
	return out, err
}

func (r *TenantRepo) CreateTenancy(t domain.Tenancy) error {
	_, err := r.db.Exec(`
	  INSERT INTO tenancies(id, tenant_id, property_id, start_date, end_date, status)
	  VALUES(?,?,?,?,?,?)
	`, t.ID, t.TenantID, t.PropertyID, t.StartDate, t.EndDate, t.Status)
	return err
}

// EndTenancy closes an active tenancy; ending an already ended one is a no-op.
func (r *TenantRepo) EndTenancy(id, endDate string) error {
	_, err := r.db.Exec(`
	  UPDATE tenancies SET end_date=? WHERE id=? AND (end_date IS NULL OR end_date='')
	`, endDate, id)
	return err
}
