// internal/models/review.go
package models

// Review is a generated customer review. Date is ISO-8601 in UTC.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}
