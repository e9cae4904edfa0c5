package models

// CakeType is an orderable cake style.
type CakeType struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	BasePrice   float64 `bson:"base_price" json:"base_price"`
	Emoji       string  `bson:"emoji" json:"emoji"`
	Photo       string  `bson:"photo" json:"photo"`
	Description string  `bson:"description" json:"description"`
}

// Size is an orderable cake size with its price multiplier.
type Size struct {
	ID         string  `bson:"id" json:"id"`
	Label      string  `bson:"label" json:"label"`
	Servings   int     `bson:"servings" json:"servings"`
	Multiplier float64 `bson:"multiplier" json:"multiplier"`
}

// Surcharges are the extra charges applied during pricing.
type Surcharges struct {
	DeliveryFee    float64 `bson:"delivery_fee" json:"delivery_fee"`
	DietaryPerItem float64 `bson:"dietary_per_item" json:"dietary_per_item"`
	FondantPremium float64 `bson:"fondant_premium" json:"fondant_premium"`
}

// SiteConfig is the storefront catalogue and pricing configuration. A single
// document (id 1) holds the live config.
type SiteConfig struct {
	CakeTypes       []CakeType `bson:"cake_types" json:"cake_types"`
	Sizes           []Size     `bson:"sizes" json:"sizes"`
	CakeFlavours    []string   `bson:"cake_flavours" json:"cake_flavours"`
	Fillings        []string   `bson:"fillings" json:"fillings"`
	FrostingTypes   []string   `bson:"frosting_types" json:"frosting_types"`
	ColourOptions   []string   `bson:"colour_options" json:"colour_options"`
	DietaryOptions  []string   `bson:"dietary_options" json:"dietary_options"`
	Surcharges      Surcharges `bson:"surcharges" json:"surcharges"`
	DeliveryEnabled bool       `bson:"delivery_enabled" json:"delivery_enabled"`
	MinDaysNotice   int        `bson:"min_days_notice" json:"min_days_notice"`
}

// CakeType returns the cake type with the given id, if present.
func (c *SiteConfig) CakeType(id string) (CakeType, bool) {
	for _, t := range c.CakeTypes {
		if t.ID == id {
			return t, true
		}
	}
	return CakeType{}, false
}

// Size returns the size with the given id, if present.
func (c *SiteConfig) Size(id string) (Size, bool) {
	for _, s := range c.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// FAQ is a frequently-asked question shown on the storefront.
type FAQ struct {
	ID         string `bson:"_id" json:"id"`
	Question   string `bson:"question" json:"question"`
	Answer     string `bson:"answer" json:"answer"`
	OrderIndex int    `bson:"order_index" json:"order_index"`
}
