// Package wpsync mirrors local property records into the WordPress site
// that serves the public listings. Local records stay the source of truth:
// a failed push is logged and dropped, never written back into local state.
package wpsync

// Payload is the body of a property create/update request against the
// WordPress REST API. It is rebuilt from the current record on every
// attempt and never persisted.
type Payload struct {
	Title   string `json:"title"`
	Status  string `json:"status"`
	Content string `json:"content"`
	ACF     ACF    `json:"acf"`
}

// ACF carries the grouped custom fields the WP ACF REST plugin consumes.
type ACF struct {
	ProfileGroup ProfileGroup `json:"profilegroup"`
}

type ProfileGroup struct {
	PropertyType     string  `json:"property_type"`
	Furnished        string  `json:"furnished"`
	MarketingStatus  string  `json:"marketing_status"`
	CategoryID       int64   `json:"category_id,omitempty"`
	Beds             int     `json:"beds"`
	Bathrooms        int     `json:"bathrooms"`
	LivingRooms      int     `json:"living_rooms"`
	Parking          int     `json:"parking"`
	Price            float64 `json:"price"`
	PaymentFrequency string  `json:"payment_frequency"`
	Location         string  `json:"location"`
	Postcode         string  `json:"postcode"`
	HouseNumber      string  `json:"house_number"`
}

// Category is one entry of the remote taxonomy.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
