package httphandler

import "time"

type (
	Product struct {
		ID               string            `json:"id"`
		Slug             string            `json:"slug"`
		Name             string            `json:"name"`
		Brand            string            `json:"brand"`
		Category         string            `json:"category"`
		Type             string            `json:"type"`
		Resolution       string            `json:"resolution"`
		Price            int64             `json:"price"`
		OriginalPrice    int64             `json:"original_price,omitempty"`
		DiscountPercent  int               `json:"discount_percent,omitempty"`
		Rating           float64           `json:"rating"`
		Reviews          int               `json:"reviews"`
		InStock          bool              `json:"in_stock"`
		Description      string            `json:"description"`
		ShortDescription string            `json:"short_description"`
		Image            string            `json:"image"`
		Specifications   map[string]string `json:"specifications"`
		CreatedAt        time.Time         `json:"created_at"`
		Featured         bool              `json:"featured"`
		BestSelling      bool              `json:"best_selling"`
	}

	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
)

type (
	CartItem struct {
		Product   Product `json:"product"`
		Quantity  int     `json:"quantity"`
		LineTotal int64   `json:"line_total"`
	}

	CartSummary struct {
		SessionID  string     `json:"session_id"`
		Items      []CartItem `json:"items"`
		TotalItems int        `json:"total_items"`
		Subtotal   int64      `json:"subtotal"`
		Tax        int64      `json:"tax"`
		Shipping   int64      `json:"shipping"`
		GrandTotal int64      `json:"grand_total"`
	}

	AddItemRequest struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}

	UpdateItemRequest struct {
		Quantity int `json:"quantity"`
	}
)

type (
	ServiceOffering struct {
		ID          string   `json:"id"`
		Icon        string   `json:"icon"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       string   `json:"price"`
		Features    []string `json:"features"`
	}

	Testimonial struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Role   string `json:"role"`
		Text   string `json:"text"`
		Rating int    `json:"rating"`
	}

	StoreInfo struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Hours   string `json:"hours"`
	}

	Enquiry struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
)
