// internal/models/catalog.go
package models

import "time"

// Persisted demo catalog entities written by the seeding tool.

type OfferType string

const (
	OfferTypeDeal     OfferType = "DEAL"
	OfferTypeCoupon   OfferType = "COUPON"
	OfferTypeDiscount OfferType = "DISCOUNT"
	OfferTypeEvent    OfferType = "EVENT"
	OfferTypeJob      OfferType = "JOB"
)

var AllOfferTypes = []OfferType{OfferTypeDeal, OfferTypeCoupon, OfferTypeDiscount, OfferTypeEvent, OfferTypeJob}

type OfferStatus string

const (
	OfferStatusPublished OfferStatus = "PUBLISHED"
	OfferStatusDraft     OfferStatus = "DRAFT"
	OfferStatusArchived  OfferStatus = "ARCHIVED"
)

type ReviewRating string

const (
	RatingOne   ReviewRating = "ONE"
	RatingTwo   ReviewRating = "TWO"
	RatingThree ReviewRating = "THREE"
	RatingFour  ReviewRating = "FOUR"
	RatingFive  ReviewRating = "FIVE"
)

var AllReviewRatings = []ReviewRating{RatingOne, RatingTwo, RatingThree, RatingFour, RatingFive}

type City struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	State       string `json:"state,omitempty" db:"state"`
	CountryCode string `json:"countryCode" db:"country_code"`
	Slug        string `json:"slug" db:"slug"`
}

type Tag struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

type Organization struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Website     string `json:"website" db:"website"`
	CityID      string `json:"cityId" db:"city_id"`
}

type Offer struct {
	ID             string      `json:"id" db:"id"`
	Title          string      `json:"title" db:"title"`
	Description    string      `json:"description" db:"description"`
	Status         OfferStatus `json:"status" db:"status"`
	Type           OfferType   `json:"type" db:"type"`
	URL            string      `json:"url,omitempty" db:"url"`
	StartsAt       time.Time   `json:"startsAt" db:"starts_at"`
	EndsAt         time.Time   `json:"endsAt" db:"ends_at"`
	OrganizationID string      `json:"organizationId" db:"organization_id"`
	CityID         string      `json:"cityId" db:"city_id"`
	TagIDs         []string    `json:"tagIds" db:"-"`
}

type OfferReview struct {
	ID        string       `json:"id" db:"id"`
	OfferID   string       `json:"offerId" db:"offer_id"`
	Rating    ReviewRating `json:"rating" db:"rating"`
	Title     string       `json:"title" db:"title"`
	Comment   string       `json:"comment" db:"comment"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}
