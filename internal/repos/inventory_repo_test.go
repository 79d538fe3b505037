package repos_test

import (
	"testing"

	"nectar/internal/domain"
	"nectar/internal/repos"

	"github.com/google/uuid"
)

func TestEnsureForPropertySeedsDefaults(t *testing.T) {
	db := memdb(t)
	props := repos.NewPropertyRepo(db)
	inv := repos.NewInventoryRepo(db)
	mkProperty(t, props)

	invID, err := inv.EnsureForProperty("p-test")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if invID == "" {
		t.Fatal("no inventory id")
	}

	// Idempotent: a second call returns the same inventory.
	again, err := inv.EnsureForProperty("p-test")
	if err != nil {
		t.Fatal(err)
	}
	if again != invID {
		t.Fatalf("second ensure created a new inventory: %s != %s", again, invID)
	}

	tree, err := inv.GetByProperty("p-test")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(tree.Rooms) != 3 {
		t.Fatalf("expected 3 default rooms, got %d", len(tree.Rooms))
	}

	items := 0
	byRoom := map[string]int{}
	for _, room := range tree.Rooms {
		items += len(room.Items)
		byRoom[room.RoomName] = len(room.Items)
	}
	if items != 4 {
		t.Fatalf("expected 4 default items, got %d", items)
	}
	if byRoom["Bedroom"] != 2 || byRoom["Kitchen"] != 1 {
		t.Fatalf("bad default item spread: %v", byRoom)
	}
}

func TestAddRoomAndItems(t *testing.T) {
	db := memdb(t)
	props := repos.NewPropertyRepo(db)
	inv := repos.NewInventoryRepo(db)
	mkProperty(t, props)

	invID, err := inv.EnsureForProperty("p-test")
	if err != nil {
		t.Fatal(err)
	}

	room, err := inv.AddRoom(invID, "Garage", "storage")
	if err != nil {
		t.Fatalf("add room: %v", err)
	}

	it := domain.Item{ID: uuid.NewString(), RoomID: room.ID, Name: "Workbench", Value: 120}
	if err := inv.AddItem(it); err != nil {
		t.Fatalf("add item: %v", err)
	}

	tree, err := inv.GetByProperty("p-test")
	if err != nil {
		t.Fatal(err)
	}
	var found *domain.Room
	for i := range tree.Rooms {
		if tree.Rooms[i].RoomName == "Garage" {
			found = &tree.Rooms[i]
		}
	}
	if found == nil {
		t.Fatal("garage missing from tree")
	}
	if len(found.Items) != 1 || found.Items[0].Name != "Workbench" {
		t.Fatalf("bad garage items: %+v", found.Items)
	}
	if found.Items[0].Quantity != 1 {
		t.Fatalf("quantity should default to 1, got %d", found.Items[0].Quantity)
	}

	if err := inv.DeleteItem(found.Items[0].ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	tree, _ = inv.GetByProperty("p-test")
	for _, room := range tree.Rooms {
		if room.RoomName == "Garage" && len(room.Items) != 0 {
			t.Fatalf("item not deleted: %+v", room.Items)
		}
	}
}
