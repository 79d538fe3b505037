package repos

import (
	"database/sql"

	"nectar/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// EnsureForProperty creates the property's inventory on first access,
// copying the default room/item templates into it. Idempotent.
func (r *InventoryRepo) EnsureForProperty(propertyID string) (string, error) {
	var invID string
	err := r.db.Get(&invID, `SELECT id FROM inventories WHERE property_id=?`, propertyID)
	if err == nil {
		return invID, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	invID = uuid.NewString()
	if _, err := tx.Exec(`INSERT INTO inventories(id, property_id) VALUES(?,?)`, invID, propertyID); err != nil {
		return "", err
	}

	type defRoom struct {
		RoomName string `db:"room_name"`
	}
	var defRooms []defRoom
	if err := tx.Select(&defRooms, `SELECT room_name FROM default_rooms ORDER BY ord`); err != nil {
		return "", err
	}

	type defItem struct {
		Name      string  `db:"name"`
		Brand     string  `db:"brand"`
		Value     float64 `db:"value"`
		Condition string  `db:"condition"`
	}
	for _, dr := range defRooms {
		roomID := uuid.NewString()
		if _, err := tx.Exec(`INSERT INTO rooms(id, inventory_id, room_name) VALUES(?,?,?)`,
			roomID, invID, dr.RoomName); err != nil {
			return "", err
		}
		var defItems []defItem
		if err := tx.Select(&defItems, `
		  SELECT name, COALESCE(brand,'') AS brand, COALESCE(value,0) AS value,
		         COALESCE(condition,'') AS condition
		  FROM default_items WHERE room_name=? ORDER BY ord
		`, dr.RoomName); err != nil {
			return "", err
		}
		for _, di := range defItems {
			if _, err := tx.Exec(`
			  INSERT INTO items(id, room_id, name, brand, value, condition)
			  VALUES(?,?,?,?,?,?)
			`, uuid.NewString(), roomID, di.Name, di.Brand, di.Value, di.Condition); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return invID, nil
}

// GetByProperty loads the full inventory tree for a property.
func (r *InventoryRepo) GetByProperty(propertyID string) (domain.Inventory, error) {
	var inv domain.Inventory
	if err := r.db.Get(&inv, `SELECT id, property_id FROM inventories WHERE property_id=?`, propertyID); err != nil {
		return domain.Inventory{}, err
	}
	if err := r.db.Select(&inv.Rooms, `
	  SELECT id, inventory_id, room_name, COALESCE(room_type,'') AS room_type
	  FROM rooms WHERE inventory_id=? ORDER BY room_name
	`, inv.ID); err != nil {
		return domain.Inventory{}, err
	}
	for i := range inv.Rooms {
		if err := r.db.Select(&inv.Rooms[i].Items, `
		  SELECT id, room_id, name, COALESCE(brand,'') AS brand, COALESCE(value,0) AS value,
		         COALESCE(condition,'') AS condition, COALESCE(owner,'') AS owner,
		         COALESCE(notes,'') AS notes, quantity, created_at
		  FROM items WHERE room_id=? ORDER BY name
		`, inv.Rooms[i].ID); err != nil {
			return domain.Inventory{}, err
		}
	}
	return inv, nil
}

func (r *InventoryRepo) AddRoom(inventoryID, roomName, roomType string) (domain.Room, error) {
	room := domain.Room{ID: uuid.NewString(), InventoryID: inventoryID, RoomName: roomName, RoomType: roomType}
	_, err := r.db.Exec(`INSERT INTO rooms(id, inventory_id, room_name, room_type) VALUES(?,?,?,?)`,
		room.ID, room.InventoryID, room.RoomName, room.RoomType)
	return room, err
}

func (r *InventoryRepo) AddItem(it domain.Item) error {
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	_, err := r.db.Exec(`
	  INSERT INTO items(id, room_id, name, brand, value, condition, owner, notes, quantity)
	  VALUES(?,?,?,?,?,?,?,?,?)
	`, it.ID, it.RoomID, it.Name, it.Brand, it.Value, it.Condition, it.Owner, it.Notes, it.Quantity)
	return err
}

func (r *InventoryRepo) DeleteItem(id string) error {
	_, err := r.db.Exec(`DELETE FROM items WHERE id=?`, id)
	return err
}
