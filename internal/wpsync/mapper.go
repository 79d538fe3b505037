package wpsync

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"nectar/internal/domain"
	applog "nectar/internal/log"
)

// DefaultTerm is used when an internal enum value has no remote
// equivalent. The mapping is total: unknown values degrade to this
// term instead of failing the sync.
const DefaultTerm = "unspecified"

// Translation tables from the dashboard's vocabulary to the terms the
// WordPress theme expects. Lookup is case-insensitive.
var (
	propertyTypeTerms = map[string]string{
		"flat":       "apartment",
		"apartment":  "apartment",
		"house":      "house",
		"bungalow":   "bungalow",
		"maisonette": "duplex",
		"studio":     "studio",
	}
	furnishedTerms = map[string]string{
		"furnished":      "furnished",
		"unfurnished":    "unfurnished",
		"part furnished": "part_furnished",
		"part-furnished": "part_furnished",
	}
	marketingTerms = map[string]string{
		"to let":     "to_let",
		"let agreed": "let_agreed",
		"let":        "let",
		"withdrawn":  "withdrawn",
	}
)

var reTag = regexp.MustCompile(`<[^>]*>`)

// BuildPayload maps a local property onto the remote field structure.
// Pure and deterministic: the same record always produces the same
// payload, so retries are idempotent and tests can compare bytes.
// Category resolution is the engine's job; CategoryID starts unset.
func BuildPayload(p domain.Property) Payload {
	pg := p.Profile
	return Payload{
		Title:   stripMarkup(p.Title),
		Status:  "publish",
		Content: stripMarkup(p.Content),
		ACF: ACF{
			ProfileGroup: ProfileGroup{
				PropertyType:     translate("property_type", p.ID, pg.PropertyType, propertyTypeTerms),
				Furnished:        translate("furnished", p.ID, pg.Furnished, furnishedTerms),
				MarketingStatus:  translate("marketing_status", p.ID, pg.MarketingStatus, marketingTerms),
				Beds:             toCount(pg.Beds),
				Bathrooms:        toCount(pg.Bathrooms),
				LivingRooms:      toCount(pg.LivingRooms),
				Parking:          toCount(pg.Parking),
				Price:            toPrice(pg.Price),
				PaymentFrequency: strings.TrimSpace(pg.PaymentFrequency),
				Location:         strings.TrimSpace(pg.Location),
				Postcode:         strings.TrimSpace(pg.Postcode),
				HouseNumber:      strings.TrimSpace(pg.HouseNumber),
			},
		},
	}
}

// translate is total over the internal vocabulary: values without a
// table entry map to DefaultTerm. Defaults are logged so data-quality
// drift in the dashboard stays visible to operators.
func translate(field, propertyID, value string, table map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		return DefaultTerm
	}
	if term, ok := table[key]; ok {
		return term
	}
	applog.Info(nil, "sync.map.default", map[string]any{
		"property": propertyID, "field": field, "value": value,
	})
	return DefaultTerm
}

// toCount coerces a free-text count to the remote integer type.
// Missing or non-numeric input maps to zero, never to an error.
func toCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func toPrice(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "£"))
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// stripMarkup drops HTML tags and decodes entities; the remote theme
// renders these fields as plain text.
func stripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(reTag.ReplaceAllString(s, "")))
}
