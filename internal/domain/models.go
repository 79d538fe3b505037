package domain

// Profile is the grouped attribute bag shown on the property detail page.
// Values arrive from the dashboard forms as free text, so the count and
// price fields stay strings here; the sync mapper coerces them.
type Profile struct {
	PropertyType     string `json:"property_type,omitempty"`
	Furnished        string `json:"furnished,omitempty"`
	MarketingStatus  string `json:"marketing_status,omitempty"`
	Category         string `json:"category,omitempty"`
	Beds             string `json:"beds,omitempty"`
	Bathrooms        string `json:"bathrooms,omitempty"`
	LivingRooms      string `json:"living_rooms,omitempty"`
	Parking          string `json:"parking,omitempty"`
	Price            string `json:"price,omitempty"`
	PaymentFrequency string `json:"payment_frequency,omitempty"`
	Location         string `json:"location,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	HouseNumber      string `json:"house_number,omitempty"`
}

type Property struct {
	ID          string  `db:"id" json:"id"`
	OwnerID     string  `db:"owner_id" json:"owner_id"`
	Title       string  `db:"title" json:"title"`
	Content     string  `db:"content" json:"content"`
	ProfileJSON string  `db:"profile_json" json:"-"`
	Profile     Profile `db:"-" json:"profile"`
	ExternalID  *int64  `db:"external_id" json:"external_id"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

type Tenant struct {
	ID               string `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	Email            string `db:"email" json:"email"`
	Phone            string `db:"phone" json:"phone"`
	DateOfBirth      string `db:"date_of_birth" json:"date_of_birth"`
	EmploymentStatus string `db:"employment_status" json:"employment_status"`
	CreatedAt        string `db:"created_at" json:"created_at"`
	UpdatedAt        string `db:"updated_at" json:"updated_at"`
}

type Tenancy struct {
	ID         string `db:"id" json:"id"`
	TenantID   string `db:"tenant_id" json:"tenant_id"`
	PropertyID string `db:"property_id" json:"property_id"`
	StartDate  string `db:"start_date" json:"start_date"`
	EndDate    string `db:"end_date" json:"end_date"`
	Status     string `db:"status" json:"status"` // Verified | Pending | Unknown
	CreatedAt  string `db:"created_at" json:"created_at"`
}

type Event struct {
	ID             string  `db:"id" json:"id"`
	PropertyID     string  `db:"property_id" json:"property_id"`
	EventName      string  `db:"event_name" json:"event_name"`
	EventDetails   string  `db:"event_details" json:"event_details"`
	Tenant         string  `db:"tenant" json:"tenant"`
	LeaseDate      string  `db:"lease_date" json:"lease_date"`
	Checkout       string  `db:"checkout" json:"checkout"`
	IncomingAmount float64 `db:"incoming_amount" json:"incoming_amount"`
	OutgoingAmount float64 `db:"outgoing_amount" json:"outgoing_amount"`
	Status         string  `db:"status" json:"status"`
	CreatedAt      string  `db:"created_at" json:"created_at"`
}

type Payment struct {
	ID          string  `db:"id" json:"id"`
	PropertyID  string  `db:"property_id" json:"property_id"`
	Amount      float64 `db:"amount" json:"amount"`
	Category    string  `db:"category" json:"category"`
	PaymentType string  `db:"payment_type" json:"payment_type"`
	Status      string  `db:"status" json:"status"`
	DueDate     string  `db:"due_date" json:"due_date"`
	Tenant      string  `db:"tenant" json:"tenant"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

type Inventory struct {
	ID         string `db:"id" json:"id"`
	PropertyID string `db:"property_id" json:"property_id"`
	Rooms      []Room `db:"-" json:"rooms"`
}

type Room struct {
	ID          string `db:"id" json:"id"`
	InventoryID string `db:"inventory_id" json:"inventory_id"`
	RoomName    string `db:"room_name" json:"room_name"`
	RoomType    string `db:"room_type" json:"room_type"`
	Items       []Item `db:"-" json:"items"`
}

type Item struct {
	ID        string  `db:"id" json:"id"`
	RoomID    string  `db:"room_id" json:"room_id"`
	Name      string  `db:"name" json:"name"`
	Brand     string  `db:"brand" json:"brand"`
	Value     float64 `db:"value" json:"value"`
	Condition string  `db:"condition" json:"condition"`
	Owner     string  `db:"owner" json:"owner"`
	Notes     string  `db:"notes" json:"notes"`
	Quantity  int     `db:"quantity" json:"quantity"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}
