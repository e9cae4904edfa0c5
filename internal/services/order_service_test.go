package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweet-moments/storefront-api/internal/models"
)

func pricingConfig() *models.SiteConfig {
	return &models.SiteConfig{
		CakeTypes: []models.CakeType{
			{ID: "celebration", Name: "Celebration Cake", BasePrice: 45},
			{ID: "wedding", Name: "Wedding Cake", BasePrice: 120},
		},
		Sizes: []models.Size{
			{ID: "six", Label: "6\"", Multiplier: 1},
			{ID: "eight", Label: "8\"", Multiplier: 1.5},
		},
		Surcharges: models.Surcharges{
			DeliveryFee:    10,
			DietaryPerItem: 5,
			FondantPremium: 15,
		},
		DeliveryEnabled: true,
		MinDaysNotice:   3,
	}
}

func TestPriceOrder(t *testing.T) {
	cfg := pricingConfig()

	tests := []struct {
		name     string
		items    []models.CakeItem
		delivery string
		want     float64
	}{
		{
			name:     "single cake pickup",
			items:    []models.CakeItem{{CakeTypeID: "celebration", SizeID: "six", Quantity: 1}},
			delivery: "pickup",
			want:     45,
		},
		{
			name:     "size multiplier and quantity",
			items:    []models.CakeItem{{CakeTypeID: "celebration", SizeID: "eight", Quantity: 2}},
			delivery: "pickup",
			want:     45 * 1.5 * 2,
		},
		{
			name: "dietary surcharge applies once per line",
			items: []models.CakeItem{{
				CakeTypeID:  "celebration",
				SizeID:      "six",
				Quantity:    3,
				DietaryReqs: []string{"gluten-free", "vegan"},
			}},
			delivery: "pickup",
			want:     45*3 + 5*2,
		},
		{
			name: "fondant premium applies once per line",
			items: []models.CakeItem{{
				CakeTypeID: "wedding",
				SizeID:     "six",
				Quantity:   2,
				Frosting:   "Fondant",
			}},
			delivery: "pickup",
			want:     120*2 + 15,
		},
		{
			name:     "delivery fee added once per order",
			items:    []models.CakeItem{{CakeTypeID: "celebration", SizeID: "six", Quantity: 1}},
			delivery: "delivery",
			want:     45 + 10,
		},
		{
			name: "multiple lines",
			items: []models.CakeItem{
				{CakeTypeID: "celebration", SizeID: "six", Quantity: 1, Frosting: "Buttercream"},
				{CakeTypeID: "wedding", SizeID: "eight", Quantity: 1, DietaryReqs: []string{"nut-free"}},
			},
			delivery: "delivery",
			want:     45 + 120*1.5 + 5 + 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, priced, err := PriceOrder(cfg, tt.items, tt.delivery)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, total, 0.001)
			require.Len(t, priced, len(tt.items))
		})
	}
}

func TestPriceOrder_UnitPrice(t *testing.T) {
	cfg := pricingConfig()

	_, priced, err := PriceOrder(cfg, []models.CakeItem{
		{CakeTypeID: "wedding", SizeID: "eight", Quantity: 2},
	}, "pickup")
	require.NoError(t, err)
	assert.InDelta(t, 180, priced[0].UnitPrice, 0.001)
}

func TestPriceOrder_UnknownCatalogueIDs(t *testing.T) {
	cfg := pricingConfig()

	_, _, err := PriceOrder(cfg, []models.CakeItem{
		{CakeTypeID: "nope", SizeID: "six", Quantity: 1},
	}, "pickup")
	assert.ErrorIs(t, err, models.ErrUnknownCakeType)

	_, _, err = PriceOrder(cfg, []models.CakeItem{
		{CakeTypeID: "celebration", SizeID: "nope", Quantity: 1},
	}, "pickup")
	assert.ErrorIs(t, err, models.ErrUnknownSize)
}
