package catalog

import "dukani_back_end/internal/models"

// Catalogue de secours : utilisé tant que la table products est vide
// (même fallback que le front d'origine)

func ptr(v float64) *float64 { return &v }

var StaticCategories = []models.Category{
	{
		ID:            "1",
		Name:          "Home Appliances",
		Slug:          "home-appliances",
		ImageURL:      "/images/categories/refrigerator.jpg",
		Subcategories: []string{"Refrigerators", "Washing Machines", "Air Conditioners", "Microwaves", "Blenders", "Electric Kettles"},
	},
	{
		ID:            "2",
		Name:          "Piao Piao",
		Slug:          "piao-piao",
		ImageURL:      "/images/categories/toilet-paper.jpg",
		Subcategories: []string{"Toilet Paper", "Baby Diapers", "Adult Diapers", "Tissue Boxes", "Wet Wipes"},
	},
	{
		ID:            "3",
		Name:          "PVC Products",
		Slug:          "pvc",
		ImageURL:      "/images/categories/pvc-pipe.jpg",
		Subcategories: []string{"PVC Pipes", "PVC Fittings", "PVC Sheets", "Rain Gutters", "Electrical Conduits"},
	},
	{
		ID:            "4",
		Name:          "Automotive",
		Slug:          "automotive",
		ImageURL:      "/images/categories/motorbike-boxer.jpg",
		Subcategories: []string{"Motorbikes", "Spare Parts", "Accessories", "Helmets", "Lubricants"},
	},
	{
		ID:            "5",
		Name:          "ZTE | nubia",
		Slug:          "zte-nubia",
		ImageURL:      "/images/categories/smartphone-zte.jpg",
		Subcategories: []string{"Smartphones", "Tablets", "Accessories", "Power Banks", "Earphones"},
	},
}

var StaticProducts = []models.Product{
	{
		ID: "1", Name: "Hisense 250L Double Door Refrigerator",
		Category: "Home Appliances", Subcategory: "Refrigerators",
		Price: 1850000, OriginalPrice: ptr(2100000),
		ImageURL: "/images/products/refrigerator.jpg",
		Rating:   4.5, Reviews: 128, SKU: "HA-REF-001",
		IsOnSale: true, IsBestSeller: true, IsActive: true, Stock: 12,
	},
	{
		ID: "2", Name: "LG 8kg Front Load Washing Machine",
		Category: "Home Appliances", Subcategory: "Washing Machines",
		Price:    2450000,
		ImageURL: "/images/products/washing-machine.jpg",
		Rating:   4.8, Reviews: 89, SKU: "HA-WM-002",
		IsBestSeller: true, IsActive: true, Stock: 8,
	},
	{
		ID: "3", Name: "Midea Split Air Conditioner 1.5HP",
		Category: "Home Appliances", Subcategory: "Air Conditioners",
		Price: 1650000, OriginalPrice: ptr(1800000),
		ImageURL: "/images/products/air-conditioner.jpg",
		Rating:   4.3, Reviews: 67, SKU: "HA-AC-003",
		IsOnSale: true, IsActive: true, Stock: 10,
	},
	{
		ID: "4", Name: "Saachi Electric Blender 1.5L",
		Category: "Home Appliances", Subcategory: "Blenders",
		Price:    185000,
		ImageURL: "/images/products/blender.jpg",
		Rating:   4.2, Reviews: 45, SKU: "HA-BL-004",
		IsNew: true, IsActive: true, Stock: 30,
	},
	{
		ID: "5", Name: "Piao Piao Premium Toilet Paper 12 Rolls",
		Category: "Piao Piao", Subcategory: "Toilet Paper",
		Price: 28000, OriginalPrice: ptr(32000),
		ImageURL: "/images/products/toilet-paper.jpg",
		Rating:   4.6, Reviews: 234, SKU: "PP-TP-001",
		IsOnSale: true, IsBestSeller: true, IsActive: true, Stock: 200,
	},
	{
		ID: "6", Name: "Piao Piao Baby Diapers Large (50pcs)",
		Category: "Piao Piao", Subcategory: "Baby Diapers",
		Price:    65000,
		ImageURL: "/images/products/baby-diapers.jpg",
		Rating:   4.7, Reviews: 189, SKU: "PP-BD-002",
		IsBestSeller: true, IsActive: true, Stock: 150,
	},
	{
		ID: "7", Name: "Piao Piao Facial Tissue Box (3 Pack)",
		Category: "Piao Piao", Subcategory: "Tissue Boxes",
		Price:    18000,
		ImageURL: "/images/products/tissue-box.jpg",
		Rating:   4.4, Reviews: 98, SKU: "PP-TB-003",
		IsNew: true, IsActive: true, Stock: 300,
	},
	{
		ID: "8", Name: "PVC Pipe 4 inch (3m Length)",
		Category: "PVC Products", Subcategory: "PVC Pipes",
		Price:    45000,
		ImageURL: "/images/products/pvc-pipe.jpg",
		Rating:   4.5, Reviews: 56, SKU: "PVC-PP-001",
		IsBestSeller: true, IsActive: true, Stock: 80,
	},
	{
		ID: "9", Name: "PVC Rain Gutter Complete Set",
		Category: "PVC Products", Subcategory: "Rain Gutters",
		Price: 180000, OriginalPrice: ptr(210000),
		ImageURL: "/images/products/rain-gutter.jpg",
		Rating:   4.3, Reviews: 34, SKU: "PVC-RG-002",
		IsOnSale: true, IsActive: true, Stock: 25,
	},
	{
		ID: "10", Name: "PVC Electrical Conduit 20mm",
		Category: "PVC Products", Subcategory: "Electrical Conduits",
		Price:    8500,
		ImageURL: "/images/products/electrical-conduit.jpg",
		Rating:   4.6, Reviews: 78, SKU: "PVC-EC-003",
		IsNew: true, IsActive: true, Stock: 500,
	},
	{
		ID: "11", Name: "Boxer 150cc Motorbike",
		Category: "Automotive", Subcategory: "Motorbikes",
		Price: 4500000, OriginalPrice: ptr(4800000),
		ImageURL: "/images/products/motorbike-boxer.jpg",
		Rating:   4.7, Reviews: 156, SKU: "AUTO-MB-001",
		IsOnSale: true, IsBestSeller: true, IsActive: true, Stock: 5,
	},
	{
		ID: "12", Name: "TVS Apache RTR 160",
		Category: "Automotive", Subcategory: "Motorbikes",
		Price:    5200000,
		ImageURL: "/images/products/motorbike-tvs.jpg",
		Rating:   4.8, Reviews: 203, SKU: "AUTO-MB-002",
		IsBestSeller: true, IsActive: true, Stock: 3,
	},
	{
		ID: "13", Name: "Premium Safety Helmet",
		Category: "Automotive", Subcategory: "Helmets",
		Price:    85000,
		ImageURL: "/images/products/helmet.jpg",
		Rating:   4.4, Reviews: 112, SKU: "AUTO-HM-003",
		IsNew: true, IsActive: true, Stock: 60,
	},
	{
		ID: "14", Name: "ZTE Blade A73 5G Smartphone",
		Category: "ZTE | nubia", Subcategory: "Smartphones",
		Price: 850000, OriginalPrice: ptr(950000),
		ImageURL: "/images/products/smartphone-zte.jpg",
		Rating:   4.5, Reviews: 167, SKU: "ZTE-SP-001",
		IsOnSale: true, IsBestSeller: true, IsActive: true, Stock: 40,
	},
	{
		ID: "15", Name: "nubia Z60 Ultra Gaming Phone",
		Category: "ZTE | nubia", Subcategory: "Smartphones",
		Price:    2800000,
		ImageURL: "/images/products/smartphone-nubia.jpg",
		Rating:   4.9, Reviews: 89, SKU: "NUB-SP-002",
		IsNew: true, IsBestSeller: true, IsActive: true, Stock: 15,
	},
	{
		ID: "16", Name: "ZTE 10000mAh Power Bank",
		Category: "ZTE | nubia", Subcategory: "Power Banks",
		Price:    95000,
		ImageURL: "/images/products/power-bank.jpg",
		Rating:   4.3, Reviews: 78, SKU: "ZTE-PB-003",
		IsNew: true, IsActive: true, Stock: 100,
	},
}
