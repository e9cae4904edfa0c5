package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sweet-moments/storefront-api/internal/config"
	"github.com/sweet-moments/storefront-api/internal/logging"
	"github.com/sweet-moments/storefront-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedConfig is the initial storefront catalogue and pricing configuration.
var SeedConfig = models.SiteConfig{
	CakeTypes: []models.CakeType{
		{
			ID:          "classic",
			Name:        "Classic Round",
			BasePrice:   65,
			Emoji:       "🎂",
			Photo:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&q=80&w=600",
			Description: "The timeless choice for any celebration. Available in single or double layers.",
		},
		{
			ID:          "tiered",
			Name:        "Tiered Celebration",
			BasePrice:   180,
			Emoji:       "🏰",
			Photo:       "https://images.unsplash.com/photo-1535254973040-607b474cb80d?auto=format&fit=crop&q=80&w=600",
			Description: "Grand, architectural designs for weddings and major milestones.",
		},
		{
			ID:          "heart",
			Name:        "Heart Shaped",
			BasePrice:   75,
			Emoji:       "❤️",
			Photo:       "https://images.unsplash.com/photo-1511208687438-2c5a5abb810c?auto=format&fit=crop&q=80&w=600",
			Description: "Vintage-inspired lambeth style hearts. Perfect for romance.",
		},
		{
			ID:          "cupcakes",
			Name:        "Artisan Cupcakes (x12)",
			BasePrice:   48,
			Emoji:       "🧁",
			Photo:       "https://images.unsplash.com/photo-1550617931-e17a7b70dce2?auto=format&fit=crop&q=80&w=600",
			Description: "Bite-sized masterpieces. Sold in dozens with custom decorations.",
		},
	},
	Sizes: []models.Size{
		{ID: "small", Label: "Small", Servings: 10, Multiplier: 1},
		{ID: "medium", Label: "Medium", Servings: 25, Multiplier: 1.8},
		{ID: "large", Label: "Large", Servings: 50, Multiplier: 3.2},
	},
	CakeFlavours:   []string{"Madagascar Vanilla", "Valrhona Chocolate", "Zesty Lemon", "Red Velvet", "Pistachio & Rose"},
	Fillings:       []string{"Vanilla Bean Buttercream", "Dark Chocolate Ganache", "Raspberry Coulis", "Salted Caramel", "Lemon Curd"},
	FrostingTypes:  []string{"Swiss Meringue Buttercream", "Ganache", "Fondant", "Cream Cheese Frosting"},
	ColourOptions:  []string{"Natural White", "Blush Pink", "Sage Green", "Dusty Blue", "Terracotta"},
	DietaryOptions: []string{"Gluten Free", "Vegan", "Nut Free", "Dairy Free"},
	Surcharges: models.Surcharges{
		DeliveryFee:    25,
		DietaryPerItem: 10,
		FondantPremium: 35,
	},
	DeliveryEnabled: true,
	MinDaysNotice:   7,
}

// SeedFAQs contains the initial storefront FAQs.
var SeedFAQs = []models.FAQ{
	{
		ID:         "notice",
		Question:   "How far in advance should I order?",
		Answer:     "We ask for at least a week's notice on all bespoke cakes. Tiered and wedding cakes book up quickly, so the earlier the better.",
		OrderIndex: 1,
	},
	{
		ID:         "dietary",
		Question:   "Can you cater for dietary requirements?",
		Answer:     "Yes. We offer gluten free, vegan, nut free and dairy free options on every cake. A small surcharge applies per requirement.",
		OrderIndex: 2,
	},
	{
		ID:         "delivery",
		Question:   "Do you deliver?",
		Answer:     "We deliver locally for a flat fee, or you can collect from the kitchen free of charge on the day of your event.",
		OrderIndex: 3,
	},
	{
		ID:         "payment",
		Question:   "When do I pay?",
		Answer:     "We confirm your order and take payment once we've reviewed the details with you. Nothing is charged when you place the order online.",
		OrderIndex: 4,
	},
}

func main() {
	fmt.Println("Seeding site configuration...")

	if err := logging.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.InitMongoDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = db.Collection(cfg.SiteConfigCollection).UpdateOne(ctx,
		bson.M{"_id": 1},
		bson.M{"$set": bson.M{"config": SeedConfig}},
		options.Update().SetUpsert(true))
	if err != nil {
		log.Fatalf("Failed to seed site config: %v", err)
	}
	fmt.Println("Site config seeded")

	faqColl := db.Collection(cfg.FAQCollection)
	for _, faq := range SeedFAQs {
		_, err := faqColl.ReplaceOne(ctx,
			bson.M{"_id": faq.ID},
			faq,
			options.Replace().SetUpsert(true))
		if err != nil {
			log.Fatalf("Failed to seed FAQ %q: %v", faq.ID, err)
		}
	}
	fmt.Printf("%d FAQs seeded\n", len(SeedFAQs))
}
