package product

import "github.com/shopspring/decimal"

// DemoProducts is served while the record store is unconfigured or unreachable.
func DemoProducts() []Product {
	return []Product{
		{
			ID:          "demo-1",
			Name:        "Premium Headphones",
			Description: "High-quality wireless headphones with noise cancellation. Configure the record store to see your actual products!",
			Price:       decimal.RequireFromString("299.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Images:      []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"},
			Category:    "Electronics",
			InStock:     true,
		},
		{
			ID:          "demo-2",
			Name:        "Smart Watch",
			Description: "Fitness tracker with heart rate monitor. This is demo data - add your record store credentials to show real products.",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Images:      []string{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400"},
			Category:    "Electronics",
			InStock:     true,
		},
		{
			ID:          "demo-3",
			Name:        "Designer Backpack",
			Description: "Stylish and functional backpack for everyday use. Connect your record store to replace this demo product.",
			Price:       decimal.RequireFromString("89.99"),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Images:      []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400"},
			Category:    "Accessories",
			InStock:     true,
		},
		{
			ID:          "demo-4",
			Name:        "Wireless Keyboard",
			Description: "Mechanical keyboard with RGB lighting. Set up the record store integration to display your products.",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400",
			Images:      []string{"https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400"},
			Category:    "Electronics",
			InStock:     true,
		},
	}
}

func DemoProduct(id string) (*Product, bool) {
	for _, p := range DemoProducts() {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}
