package entity

import (
	"time"
)

// Rating defaults for a freshly created profile. Ratings themselves
// are adjusted by a backoffice process, never by this service.
const (
	DefaultRating       = 5
	DefaultRatingsCount = 0
)

type Profile struct {
	UID          string    `json:"uid" firestore:"uid"`
	Name         string    `json:"name" firestore:"name"`
	Photo        string    `json:"photo,omitempty" firestore:"photo,omitempty"`
	Email        string    `json:"email,omitempty" firestore:"email,omitempty"`
	City         string    `json:"city" firestore:"city"`
	Rating       float64   `json:"rating" firestore:"rating"`
	RatingsCount int       `json:"ratings_count" firestore:"ratingsCount"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
