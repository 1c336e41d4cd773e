package domain

import "errors"

var ErrInvalidEnquiry = errors.New("enquiry requires name, email and message")

// CategorySummary is a catalog-derived category tile: the stable category
// id, a display name and how many products the catalog holds for it.
type CategorySummary struct {
	ID    string
	Name  string
	Count int
}

type Testimonial struct {
	ID     string
	Name   string
	Role   string
	Text   string
	Rating int
}

// ServiceOffering is one entry on the services page. Price is a display
// string ("From ₹499", "Free"), not an amount the cart can charge.
type ServiceOffering struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Price       string
	Features    []string
}

type StoreInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Hours   string
}

type Enquiry struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (e Enquiry) Validate() error {
	if e.Name == "" || e.Email == "" || e.Message == "" {
		return ErrInvalidEnquiry
	}
	return nil
}
