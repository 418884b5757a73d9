package productControllers

import (
	"github.com/agroconnect/agroconnect-api/models"
	"gorm.io/gorm"
)

// Seed replaces the catalog with the sample marketplace listing. Used for
// fresh deployments and demos; gated behind SEED_PRODUCTS at boot.
func Seed(db *gorm.DB) (int, error) {
	products := []models.Product{
		// Fertilizers
		{Name: "Organic Compost Fertilizer", Category: "fertilizer", Price: 450, Unit: "50kg bag", Description: "Premium organic compost enriched with essential nutrients. Perfect for all crops and improves soil health naturally.", Image: "🌱", Stock: 150, Rating: 4.5, Reviews: 89, Seller: "GreenGrow Supplies", Location: "Mumbai, Maharashtra"},
		{Name: "NPK Complex Fertilizer 19:19:19", Category: "fertilizer", Price: 850, Unit: "50kg bag", Description: "Balanced NPK fertilizer suitable for all crops. Provides nitrogen, phosphorus, and potassium in equal proportions.", Image: "🌱", Stock: 200, Rating: 4.7, Reviews: 156, Seller: "AgriChem Industries", Location: "Pune, Maharashtra"},
		{Name: "Urea Fertilizer", Category: "fertilizer", Price: 600, Unit: "50kg bag", Description: "High-quality urea fertilizer with 46% nitrogen content. Ideal for rapid plant growth and green foliage.", Image: "🌱", Stock: 300, Rating: 4.3, Reviews: 124, Seller: "FarmFresh Supplies", Location: "Delhi, NCR"},
		{Name: "Vermicompost Premium", Category: "fertilizer", Price: 350, Unit: "40kg bag", Description: "Natural vermicompost produced from earthworms. Rich in nutrients and beneficial microorganisms.", Image: "🌱", Stock: 180, Rating: 4.8, Reviews: 203, Seller: "EcoFarm Solutions", Location: "Bangalore, Karnataka"},

		// Pesticides
		{Name: "Organic Neem Oil Pesticide", Category: "pesticide", Price: 280, Unit: "1 liter", Description: "Natural neem oil-based pesticide. Safe for organic farming, controls pests and diseases effectively.", Image: "🛡️", Stock: 120, Rating: 4.6, Reviews: 98, Seller: "NatureCare Agro", Location: "Chennai, Tamil Nadu"},
		{Name: "Insecticide - Chlorpyrifos 20% EC", Category: "pesticide", Price: 520, Unit: "1 liter", Description: "Broad-spectrum insecticide for control of soil and foliage pests in various crops.", Image: "🛡️", Stock: 95, Rating: 4.4, Reviews: 67, Seller: "CropProtect Ltd", Location: "Hyderabad, Telangana"},
		{Name: "Fungicide - Mancozeb 75% WP", Category: "pesticide", Price: 380, Unit: "500g pack", Description: "Protective fungicide for control of early and late blight in vegetables and fruits.", Image: "🛡️", Stock: 140, Rating: 4.5, Reviews: 89, Seller: "AgriShield Products", Location: "Ahmedabad, Gujarat"},
		{Name: "Bio Pesticide - Bacillus Thuringiensis", Category: "pesticide", Price: 320, Unit: "250ml", Description: "Organic bio-pesticide for caterpillar and larvae control. Safe for beneficial insects.", Image: "🛡️", Stock: 75, Rating: 4.7, Reviews: 112, Seller: "BioAgri Solutions", Location: "Kolkata, West Bengal"},

		// Seeds
		{Name: "Hybrid Rice Seeds - HR-1001", Category: "seed", Price: 1200, Unit: "10kg pack", Description: "High-yielding hybrid rice seeds with disease resistance. Suitable for all seasons.", Image: "🌾", Stock: 500, Rating: 4.8, Reviews: 234, Seller: "SeedTech India", Location: "Ludhiana, Punjab"},
		{Name: "Hybrid Tomato Seeds - BT-305", Category: "seed", Price: 450, Unit: "100g pack", Description: "Premium hybrid tomato seeds with excellent fruit quality and high productivity.", Image: "🌾", Stock: 350, Rating: 4.6, Reviews: 187, Seller: "VeggieSeeds Pro", Location: "Nasik, Maharashtra"},
		{Name: "Wheat Seeds - PBW-725", Category: "seed", Price: 850, Unit: "25kg bag", Description: "High-yielding wheat variety suitable for irrigated areas. Good for roti making.", Image: "🌾", Stock: 600, Rating: 4.7, Reviews: 298, Seller: "GrainMaster Seeds", Location: "Meerut, Uttar Pradesh"},
		{Name: "Hybrid Maize Seeds - DHM-117", Category: "seed", Price: 680, Unit: "5kg pack", Description: "Drought-tolerant hybrid maize seeds with excellent grain quality and yield.", Image: "🌾", Stock: 280, Rating: 4.5, Reviews: 156, Seller: "CornFields Ltd", Location: "Indore, Madhya Pradesh"},

		// Tools
		{Name: "Garden Spade with Wooden Handle", Category: "tool", Price: 280, Unit: "piece", Description: "Heavy-duty garden spade with ergonomic wooden handle. Perfect for digging and soil preparation.", Image: "🔧", Stock: 95, Rating: 4.3, Reviews: 67, Seller: "ToolMart Agro", Location: "Jaipur, Rajasthan"},
		{Name: "Pruning Shears - Professional", Category: "tool", Price: 420, Unit: "piece", Description: "High-quality pruning shears with sharp stainless steel blades. Comfortable grip handle.", Image: "🔧", Stock: 120, Rating: 4.6, Reviews: 89, Seller: "FarmTools Direct", Location: "Chandigarh"},
		{Name: "Garden Hoe - Wide Blade", Category: "tool", Price: 350, Unit: "piece", Description: "Wide-blade garden hoe for weeding and soil cultivation. Durable steel construction.", Image: "🔧", Stock: 78, Rating: 4.4, Reviews: 54, Seller: "AgriEquip Store", Location: "Lucknow, Uttar Pradesh"},
		{Name: "Hand Trowel Set - 3 Pieces", Category: "tool", Price: 180, Unit: "set", Description: "Set of 3 hand trowels for transplanting, weeding, and soil work. Rust-resistant coating.", Image: "🔧", Stock: 145, Rating: 4.5, Reviews: 102, Seller: "GardenPro Tools", Location: "Surat, Gujarat"},

		// Equipment
		{Name: "Knapsack Sprayer - 16 Liters", Category: "equipment", Price: 1850, Unit: "piece", Description: "Manual knapsack sprayer with adjustable nozzle. Ideal for pesticide and fertilizer application.", Image: "⚙️", Stock: 65, Rating: 4.5, Reviews: 78, Seller: "SprayTech Industries", Location: "Coimbatore, Tamil Nadu"},
		{Name: "Power Tiller - 5HP", Category: "equipment", Price: 28500, Unit: "piece", Description: "Compact power tiller for small to medium farms. Easy to operate with low maintenance.", Image: "⚙️", Stock: 12, Rating: 4.7, Reviews: 45, Seller: "MechFarm Equipment", Location: "Rajkot, Gujarat"},
		{Name: "Chaff Cutter Machine - Electric", Category: "equipment", Price: 12500, Unit: "piece", Description: "Electric chaff cutter for fodder preparation. High efficiency with safety features.", Image: "⚙️", Stock: 28, Rating: 4.4, Reviews: 67, Seller: "AgroMachines Co", Location: "Meerut, Uttar Pradesh"},
		{Name: "Drip Irrigation Kit - 1 Acre", Category: "equipment", Price: 18500, Unit: "kit", Description: "Complete drip irrigation system for 1 acre. Includes pipes, drippers, and fittings.", Image: "⚙️", Stock: 35, Rating: 4.8, Reviews: 134, Seller: "WaterSave Systems", Location: "Nashik, Maharashtra"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Create(&products).Error
	})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}
