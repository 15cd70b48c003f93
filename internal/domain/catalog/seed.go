// internal/domain/catalog/seed.go
package catalog

// Default returns the UrbanWear demo catalog. It is inserted into the
// products table on first start and used directly in tests.
func Default() []Product {
	return []Product{
		{
			ID:           1,
			Name:         "Signature Oversized Tee",
			Price:        1199,
			Category:     "T-Shirts",
			Sizes:        []string{"XS", "S", "M", "L", "XL"},
			Colors:       []string{"Black", "White", "Beige"},
			Rating:       4.6,
			Image:        "/assets/images/product-01.jpg",
			Description:  "Premium cotton oversized tee with a structured drape. Minimal branding, elevated everyday essential.",
			IsNew:        true,
			IsBestSeller: true,
		},
		{
			ID:          2,
			Name:        "Tailored Slim Chinos",
			Price:       2499,
			Category:    "Bottomwear",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Black", "Beige"},
			Rating:      4.4,
			Image:       "/assets/images/product-02.jpg",
			Description: "Smart slim-fit chinos with a clean taper. Comfortable stretch with a refined finish for day-to-night wear.",
			IsNew:       true,
		},
		{
			ID:           3,
			Name:         "Minimal Zip Hoodie",
			Price:        2999,
			Category:     "Hoodies",
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors:       []string{"Black", "Beige"},
			Rating:       4.7,
			Image:        "/assets/images/product-03.jpg",
			Description:  "Heavyweight fleece hoodie with premium zipper hardware. Soft interior, sharp silhouette, zero noise design.",
			IsBestSeller: true,
		},
		{
			ID:          4,
			Name:        "Cropped Denim Jacket",
			Price:       3499,
			Category:    "Jackets",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "White"},
			Rating:      4.3,
			Image:       "/assets/images/product-04.jpg",
			Description: "Modern cropped denim jacket with clean seams and subtle contrast stitching. Perfect layer for urban evenings.",
			IsNew:       true,
		},
		{
			ID:           5,
			Name:         "Classic Straight Jeans",
			Price:        2799,
			Category:     "Bottomwear",
			Sizes:        []string{"28", "30", "32", "34", "36"},
			Colors:       []string{"Black", "Beige"},
			Rating:       4.5,
			Image:        "/assets/images/product-05.jpg",
			Description:  "Straight-fit jeans with a premium wash and durable stitching. Clean look, comfortable movement.",
			IsBestSeller: true,
		},
		{
			ID:          6,
			Name:        "Textured Knit Polo",
			Price:       2299,
			Category:    "Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Beige", "White", "Black"},
			Rating:      4.2,
			Image:       "/assets/images/product-06.jpg",
			Description: "Soft knit polo with refined texture and minimal placket. A luxe alternative to the everyday tee.",
			IsNew:       true,
		},
		{
			ID:          7,
			Name:        "Relaxed Linen Shirt",
			Price:       1999,
			Category:    "Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Beige"},
			Rating:      4.4,
			Image:       "/assets/images/product-07.jpg",
			Description: "Breathable linen shirt with relaxed fit and clean collar. Summer-ready sophistication in neutral tones.",
		},
		{
			ID:           8,
			Name:         "Structured Blazer",
			Price:        4999,
			Category:     "Jackets",
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors:       []string{"Black", "Beige"},
			Rating:       4.8,
			Image:        "/assets/images/product-08.jpg",
			Description:  "Sharp structured blazer with premium lining and minimal shoulder padding. Designed for modern tailoring.",
			IsNew:        true,
			IsBestSeller: true,
		},
		{
			ID:          9,
			Name:        "Pleated Wide-Leg Trousers",
			Price:       3299,
			Category:    "Bottomwear",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Black", "Beige"},
			Rating:      4.6,
			Image:       "/assets/images/product-09.jpg",
			Description: "Elegant wide-leg trousers with pleats and fluid drape. Clean front, premium finish, statement silhouette.",
			IsNew:       true,
		},
		{
			ID:          10,
			Name:        "Ribbed Tank Top",
			Price:       899,
			Category:    "T-Shirts",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"White", "Black", "Beige"},
			Rating:      4.1,
			Image:       "/assets/images/product-10.jpg",
			Description: "Ribbed tank with a soft stretch feel and clean neckline. Ideal for layering or minimal summer fits.",
		},
		{
			ID:           11,
			Name:         "Premium Crewneck Sweater",
			Price:        2799,
			Category:     "Sweaters",
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors:       []string{"Beige", "Black"},
			Rating:       4.5,
			Image:        "/assets/images/product-11.jpg",
			Description:  "Soft-touch crewneck sweater with a refined knit and minimal ribbing. Luxe warmth with a clean look.",
			IsBestSeller: true,
		},
		{
			ID:           12,
			Name:         "Essential Puffer Jacket",
			Price:        5999,
			Category:     "Jackets",
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors:       []string{"Black", "Beige"},
			Rating:       4.7,
			Image:        "/assets/images/product-12.jpg",
			Description:  "Lightweight warmth with a premium matte finish. Minimal design, maximum comfort for winter city nights.",
			IsNew:        true,
			IsBestSeller: true,
		},
		{
			ID:          13,
			Name:        "Monochrome Co-ord Set",
			Price:       4499,
			Category:    "Sets",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Beige"},
			Rating:      4.3,
			Image:       "/assets/images/product-13.jpg",
			Description: "Matching co-ord set with elevated fabric and minimal lines. Designed for effortless, premium street style.",
			IsNew:       true,
		},
		{
			ID:          14,
			Name:        "Everyday Utility Overshirt",
			Price:       2699,
			Category:    "Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Beige"},
			Rating:      4.2,
			Image:       "/assets/images/product-14.jpg",
			Description: "Utility overshirt with clean pockets and structured collar. Works as a layer or standalone statement.",
		},
		{
			ID:           15,
			Name:         "Minimal Leather Belt",
			Price:        1299,
			Category:     "Accessories",
			Sizes:        []string{"S", "M", "L"},
			Colors:       []string{"Black"},
			Rating:       4.6,
			Image:        "/assets/images/product-15.jpg",
			Description:  "Genuine leather belt with brushed metal buckle. Minimal and timeless, built for daily use.",
			IsBestSeller: true,
		},
		{
			ID:          16,
			Name:        "Clean Court Sneakers",
			Price:       3999,
			Category:    "Footwear",
			Sizes:       []string{"UK6", "UK7", "UK8", "UK9", "UK10"},
			Colors:      []string{"White", "Beige", "Black"},
			Rating:      4.4,
			Image:       "/assets/images/product-16.jpg",
			Description: "Minimal court sneakers with a premium finish and comfortable insole. Matches everything, looks luxe.",
			IsNew:       true,
		},
	}
}
