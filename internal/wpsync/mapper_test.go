package wpsync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nectar/internal/domain"
)

func sampleProperty() domain.Property {
	return domain.Property{
		ID:      "p-1",
		Title:   "Sunny two-bed flat",
		Content: "Close to the station.",
		Profile: domain.Profile{
			PropertyType:     "Flat",
			Furnished:        "Part Furnished",
			MarketingStatus:  "To Let",
			Beds:             "2",
			Bathrooms:        "1",
			LivingRooms:      "1",
			Parking:          "0",
			Price:            "£1,250.50",
			PaymentFrequency: "monthly",
			Location:         "Leeds",
			Postcode:         "LS1 4AB",
			HouseNumber:      "12",
		},
	}
}

func TestBuildPayloadMapsVocabulary(t *testing.T) {
	got := BuildPayload(sampleProperty())

	assert.Equal(t, "publish", got.Status)
	pg := got.ACF.ProfileGroup
	assert.Equal(t, "apartment", pg.PropertyType)
	assert.Equal(t, "part_furnished", pg.Furnished)
	assert.Equal(t, "to_let", pg.MarketingStatus)
	assert.Equal(t, 2, pg.Beds)
	assert.Equal(t, 1, pg.Bathrooms)
	assert.Equal(t, 1250.50, pg.Price)
	assert.Equal(t, "LS1 4AB", pg.Postcode)
	assert.Zero(t, pg.CategoryID)
}

func TestBuildPayloadIsTotal(t *testing.T) {
	p := sampleProperty()
	p.Profile.PropertyType = "castle"
	p.Profile.Furnished = ""
	p.Profile.MarketingStatus = "on hold"
	p.Profile.Beds = "many"
	p.Profile.Parking = "-2"
	p.Profile.Price = "ask the agent"

	got := BuildPayload(p)
	pg := got.ACF.ProfileGroup
	assert.Equal(t, DefaultTerm, pg.PropertyType)
	assert.Equal(t, DefaultTerm, pg.Furnished)
	assert.Equal(t, DefaultTerm, pg.MarketingStatus)
	assert.Zero(t, pg.Beds)
	assert.Zero(t, pg.Parking)
	assert.Zero(t, pg.Price)
}

func TestBuildPayloadIsDeterministic(t *testing.T) {
	p := sampleProperty()
	a, err := json.Marshal(BuildPayload(p))
	require.NoError(t, err)
	b, err := json.Marshal(BuildPayload(p))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildPayloadStripsMarkup(t *testing.T) {
	p := sampleProperty()
	p.Title = `<script>alert(1)</script>Bright &amp; airy`
	p.Content = `<p>Two floors</p>`

	got := BuildPayload(p)
	assert.Equal(t, "alert(1)Bright & airy", got.Title)
	assert.Equal(t, "Two floors", got.Content)
}

func TestToPriceVariants(t *testing.T) {
	cases := map[string]float64{
		"950":        950,
		" £950 ":     950,
		"£1,200":     1200,
		"1,200.99":   1200.99,
		"":           0,
		"-50":        0,
		"two grand":  0,
		"£1,000,000": 1000000,
	}
	for in, want := range cases {
		assert.Equal(t, want, toPrice(in), "input %q", in)
	}
}
