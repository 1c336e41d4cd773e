package domain

import "math"

// Pricing holds the derived-total rules applied on every cart read.
type Pricing struct {
	TaxRate          float64
	FreeShippingOver int64
	FlatShippingFee  int64
}

// DefaultPricing: 18% GST, flat 199 shipping waived strictly above 5000.
var DefaultPricing = Pricing{
	TaxRate:          0.18,
	FreeShippingOver: 5000,
	FlatShippingFee:  199,
}

type CartItem struct {
	Product  Product
	Quantity int
}

func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// Cart is an ordered collection of line items, unique by product id.
// It belongs to exactly one session; callers must not share an instance
// between goroutines. Totals are computed on read, never stored.
type Cart struct {
	pricing Pricing
	items   []CartItem
}

func NewCart(pricing Pricing) *Cart {
	return &Cart{pricing: pricing}
}

// Add merges quantity into an existing line for the product or appends a
// new line at the end. Quantities below 1 are ignored.
func (c *Cart) Add(p Product, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: quantity})
}

// Remove deletes the line with the given product id. Removing an absent
// line is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. A quantity of zero or below
// removes the line. Unknown product ids are ignored; a line is never
// created here.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.LineTotal()
	}
	return sum
}

func (c *Cart) Tax() int64 {
	return int64(math.Round(float64(c.Subtotal()) * c.pricing.TaxRate))
}

// ShippingFee is waived only strictly above the threshold, so an empty
// cart still reads the flat fee. Observed storefront behavior, kept as is.
func (c *Cart) ShippingFee() int64 {
	if c.Subtotal() > c.pricing.FreeShippingOver {
		return 0
	}
	return c.pricing.FlatShippingFee
}

func (c *Cart) GrandTotal() int64 {
	return c.Subtotal() + c.Tax() + c.ShippingFee()
}

// CartSummary is the read model handed to the presentation layer:
// the lines plus every derived total at the moment of the read.
type CartSummary struct {
	SessionID  string
	Items      []CartItem
	TotalItems int
	Subtotal   int64
	Tax        int64
	Shipping   int64
	GrandTotal int64
}

func (c *Cart) Summary(sessionID string) CartSummary {
	return CartSummary{
		SessionID:  sessionID,
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
		Tax:        c.Tax(),
		Shipping:   c.ShippingFee(),
		GrandTotal: c.GrandTotal(),
	}
}
