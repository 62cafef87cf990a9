package catalog

// Product is a wholesale catalog SKU. The catalog is static seed data and
// read-only at runtime; suppliers manage listings outside this system.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	MRP          float64 `json:"mrp"`
	Discount     float64 `json:"discount"`
	Rating       float64 `json:"rating"`
	SupplierID   string  `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	MinOrderQty  int     `json:"min_order_qty"`
	Stock        int     `json:"stock"`
	SKU          string  `json:"sku"`
	MfgDate      string  `json:"mfg_date,omitempty"`
	IsTrending   bool    `json:"is_trending,omitempty"`
}

// CartItem is a product plus the quantity the merchant wants.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Categories lists the marketplace filter categories.
var Categories = []string{
	"Grocery & Staples",
	"Electronics",
	"Home & Kitchen",
	"Personal Care",
	"Snacks & Beverages",
}

// BusinessCategories lists the shop types offered at onboarding.
var BusinessCategories = []string{
	"Supermarkets/Grocery Stores",
	"Electronics & Mobile",
	"Pharmacy & Wellness",
	"Clothing & Apparel",
	"Hardware & Paint",
	"Stationery & General",
}

// Products is the seed marketplace catalog.
var Products = []Product{
	{
		ID: "P001", Name: "Premium Basmati Rice Bag 25kg", Category: "Grocery & Staples",
		Price: 1450, MRP: 1800, Discount: 19, Rating: 4.6,
		SupplierID: "S01", SupplierName: "Annapurna Agro Traders",
		MinOrderQty: 10, Stock: 240, SKU: "GRC-RICE-25K", MfgDate: "2026-05-12",
	},
	{
		ID: "P002", Name: "Refined Sugar Sack 50kg", Category: "Grocery & Staples",
		Price: 2100, MRP: 2400, Discount: 12, Rating: 4.4,
		SupplierID: "S01", SupplierName: "Annapurna Agro Traders",
		MinOrderQty: 5, Stock: 85, SKU: "GRC-SUGR-50K", MfgDate: "2026-06-01",
	},
	{
		ID: "P003", Name: "Sunflower Oil Tin 15L", Category: "Grocery & Staples",
		Price: 1950, MRP: 2250, Discount: 13, Rating: 4.5,
		SupplierID: "S02", SupplierName: "Kaveri Edibles",
		MinOrderQty: 8, Stock: 160, SKU: "GRC-OIL-15L", MfgDate: "2026-07-20", IsTrending: true,
	},
	{
		ID: "P004", Name: "LED Bulb 9W Cool White (Box of 50)", Category: "Electronics",
		Price: 38, MRP: 60, Discount: 36, Rating: 4.2,
		SupplierID: "S03", SupplierName: "Voltarc Lighting Co",
		MinOrderQty: 50, Stock: 1200, SKU: "ELC-LED-9W",
	},
	{
		ID: "P005", Name: "Wireless Headphones Budget Series", Category: "Electronics",
		Price: 420, MRP: 799, Discount: 47, Rating: 4.0,
		SupplierID: "S04", SupplierName: "SoundCore Distributors",
		MinOrderQty: 20, Stock: 60, SKU: "ELC-HDP-BGT", IsTrending: true,
	},
	{
		ID: "P006", Name: "Stainless Steel Storage Jar Set", Category: "Home & Kitchen",
		Price: 310, MRP: 450, Discount: 31, Rating: 4.3,
		SupplierID: "S05", SupplierName: "GharSansar Homeware",
		MinOrderQty: 12, Stock: 340, SKU: "HNK-JAR-SET",
	},
	{
		ID: "P007", Name: "Ceramic Flower Vase Decor", Category: "Home & Kitchen",
		Price: 180, MRP: 300, Discount: 40, Rating: 3.9,
		SupplierID: "S05", SupplierName: "GharSansar Homeware",
		MinOrderQty: 24, Stock: 44, SKU: "HNK-VASE-CRM",
	},
	{
		ID: "P008", Name: "Herbal Bath Soap Carton (144 pcs)", Category: "Personal Care",
		Price: 16, MRP: 30, Discount: 46, Rating: 4.1,
		SupplierID: "S06", SupplierName: "Nirmal Care Products",
		MinOrderQty: 144, Stock: 2800, SKU: "PRC-SOAP-HRB", MfgDate: "2026-04-02",
	},
	{
		ID: "P009", Name: "Masala Chips Display Pack (60 pcs)", Category: "Snacks & Beverages",
		Price: 8, MRP: 10, Discount: 20, Rating: 4.7,
		SupplierID: "S07", SupplierName: "Crunchify Foods",
		MinOrderQty: 120, Stock: 95, SKU: "SNB-CHIP-MSL", MfgDate: "2026-08-10", IsTrending: true,
	},
	{
		ID: "P010", Name: "Instant Tea Premix Jar 1kg", Category: "Snacks & Beverages",
		Price: 260, MRP: 340, Discount: 23, Rating: 4.4,
		SupplierID: "S07", SupplierName: "Crunchify Foods",
		MinOrderQty: 15, Stock: 410, SKU: "SNB-TEA-1KG", MfgDate: "2026-07-01",
	},
}

// FindProduct returns the catalog product with the given id, or false.
func FindProduct(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
