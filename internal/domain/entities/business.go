package entities

import (
	"time"
)

// BusinessProfile represents a business listing as maintained by its owner.
// Every field the audit engine reads is optional: an empty profile is a
// valid input and simply scores zero.
type BusinessProfile struct {
	ID               string         `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Slug             string         `json:"slug" db:"slug"`
	Category         string         `json:"category" db:"category"`
	SeoTitle         string         `json:"seo_title" db:"seo_title"`
	SeoDescription   string         `json:"seo_description" db:"seo_description"`
	ShortDescription string         `json:"short_description" db:"short_description"`
	LongDescription  string         `json:"long_description" db:"long_description"`
	LocalText        string         `json:"local_text,omitempty" db:"local_text"`
	ServiceArea      string         `json:"service_area,omitempty" db:"service_area"`
	PhoneNumber      string         `json:"phone_number" db:"phone_number"`
	Email            string         `json:"email" db:"email"`
	Website          string         `json:"website" db:"website"`
	Address          Address        `json:"address" db:"-"`
	LogoURL          string         `json:"logo_url" db:"logo_url"`
	CoverImageURL    string         `json:"cover_image_url" db:"cover_image_url"`
	Services         []string       `json:"services,omitempty" db:"-"`
	Highlights       []string       `json:"highlights,omitempty" db:"-"`
	FAQ              []FAQItem      `json:"faq,omitempty" db:"-"`
	Gallery          []GalleryImage `json:"gallery,omitempty" db:"-"`
	OpeningHours     []OpeningHours `json:"opening_hours,omitempty" db:"-"`
	Rating           float64        `json:"rating" db:"rating"`
	ReviewCount      int            `json:"review_count" db:"review_count"`
	Reviews          []Review       `json:"reviews,omitempty" db:"-"`
	IsActive         bool           `json:"is_active" db:"is_active"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// Address represents a physical address
type Address struct {
	Street     string `json:"street" db:"street"`
	PostalCode string `json:"postal_code" db:"postal_code"`
	City       string `json:"city" db:"city"`
}

// FAQItem represents one question/answer pair on a profile
type FAQItem struct {
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
}

// GalleryImage represents one image in the profile gallery
type GalleryImage struct {
	URL     string `json:"url" db:"url"`
	AltText string `json:"alt_text" db:"alt_text"`
}

// OpeningHours represents opening hours for a single day
type OpeningHours struct {
	Day    string `json:"day" db:"day"`
	Open   string `json:"open" db:"open_time"`
	Close  string `json:"close" db:"close_time"`
	Closed bool   `json:"closed" db:"closed"`
}

// Review represents a customer review, optionally answered by the owner
type Review struct {
	Author        string    `json:"author" db:"author"`
	Rating        float64   `json:"rating" db:"rating"`
	Text          string    `json:"text" db:"text"`
	OwnerResponse string    `json:"owner_response,omitempty" db:"owner_response"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
