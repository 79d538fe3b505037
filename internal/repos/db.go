package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (default rooms/items for inventories)
	if err := seedDefaults(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('ADMIN','MANAGER','OWNER')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Properties
CREATE TABLE IF NOT EXISTS properties(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
  title TEXT NOT NULL,
  content TEXT NOT NULL DEFAULT '',
  profile_json TEXT NOT NULL DEFAULT '{}',
  external_id INTEGER NULL,          -- WordPress post id, set after first sync
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties(owner_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_properties_external
  ON properties(external_id) WHERE external_id IS NOT NULL;

-- Tenants & tenancy history
CREATE TABLE IF NOT EXISTS tenants(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT,
  phone TEXT,
  date_of_birth TEXT,
  employment_status TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_tenants_email
  ON tenants(LOWER(email)) WHERE email IS NOT NULL AND email <> '';

CREATE TABLE IF NOT EXISTS tenancies(
  id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
  property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
  start_date TEXT,
  end_date TEXT,
  status TEXT,                       -- Verified | Pending | Unknown
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tenancies_property ON tenancies(property_id);

-- Calendar events
CREATE TABLE IF NOT EXISTS events(
  id TEXT PRIMARY KEY,
  property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
  event_name TEXT NOT NULL,
  event_details TEXT,
  tenant TEXT,
  lease_date TEXT,
  checkout TEXT,
  incoming_amount NUMERIC DEFAULT 0,
  outgoing_amount NUMERIC DEFAULT 0,
  status TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_events_property ON events(property_id);

-- Payments
CREATE TABLE IF NOT EXISTS payments(
  id TEXT PRIMARY KEY,
  property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
  amount NUMERIC NOT NULL CHECK (amount >= 0),
  category TEXT,
  payment_type TEXT,
  status TEXT,
  due_date TEXT,
  tenant TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_payments_property ON payments(property_id);

-- Inventory: one per property, rooms and items
CREATE TABLE IF NOT EXISTS inventories(
  id TEXT PRIMARY KEY,
  property_id TEXT NOT NULL UNIQUE REFERENCES properties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS rooms(
  id TEXT PRIMARY KEY,
  inventory_id TEXT NOT NULL REFERENCES inventories(id) ON DELETE CASCADE,
  room_name TEXT NOT NULL,
  room_type TEXT
);
CREATE INDEX IF NOT EXISTS idx_rooms_inventory ON rooms(inventory_id);

CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  room_id TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  brand TEXT,
  value NUMERIC DEFAULT 0,
  condition TEXT,
  owner TEXT,
  notes TEXT,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_items_room ON items(room_id);

-- Templates copied into every new inventory
CREATE TABLE IF NOT EXISTS default_rooms(
  room_name TEXT PRIMARY KEY,
  ord INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS default_items(
  room_name TEXT NOT NULL REFERENCES default_rooms(room_name) ON DELETE CASCADE,
  name TEXT NOT NULL,
  brand TEXT,
  value NUMERIC DEFAULT 0,
  condition TEXT,
  ord INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (room_name, name)
);

-- WordPress category cache: name -> term id, upsert-only
CREATE TABLE IF NOT EXISTS wp_category_cache(
  name TEXT PRIMARY KEY,             -- case-normalized category name
  term_id INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// seedDefaults inserts the default room/item templates if missing.
// Safe to run on every startup (idempotent).
func seedDefaults(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM default_rooms`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default inventory rooms/items")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO default_rooms(room_name, ord) VALUES
	  ('Bedroom', 1),
	  ('Bathroom', 2),
	  ('Kitchen', 3)`)

	tx.MustExec(`INSERT INTO default_items(room_name, name, brand, value, condition, ord) VALUES
	  ('Bedroom', 'Bed', 'IKEA', 500, 'New', 1),
	  ('Bedroom', 'Pillow', 'IKEA', 30, 'New', 2),
	  ('Bathroom', 'Sink', '', 200, 'New', 1),
	  ('Kitchen', 'Oven', '', 800, 'New', 1)`)

	return tx.Commit()
}

// seedUsers ensures a manager, an owner and an admin exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@nectar.test", "Admin", "ADMIN", "Passw0rd!"),
		mk("u-manager", "manager@nectar.test", "Morgan", "MANAGER", "Passw0rd!"),
		mk("u-owner", "owner@nectar.test", "Olive", "OWNER", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
