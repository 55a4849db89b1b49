package entity

import (
	"time"
)

// Offer types a listing can carry. The labels are what the mobile and
// web clients display, so they are stored verbatim.
const (
	TypeSell   = "Vender"
	TypeTrade  = "Trocar"
	TypeRent   = "Alugar"
	TypeLend   = "Emprestar"
	TypeDonate = "Doar"
)

func ListingTypes() []string {
	return []string{TypeSell, TypeTrade, TypeRent, TypeLend, TypeDonate}
}

const (
	// CategoryAll is a filter value only, never stored on a listing.
	CategoryAll = "Todas"
	// CategoryOther is the fallback category for records predating
	// the category field.
	CategoryOther = "Outros"
)

func Categories() []string {
	return []string{
		"Veículos",
		"Ferramentas",
		"Livros",
		"Eletrodomésticos e Utilidades Domésticas",
		"Eletrônicos",
		"Móveis",
		"Esporte & Lazer",
		"Infantil & Brinquedos",
		"Roupas",
		"Calçados",
		CategoryOther,
	}
}

func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

func ValidListingType(t string) bool {
	for _, lt := range ListingTypes() {
		if lt == t {
			return true
		}
	}
	return false
}

type Listing struct {
	ID                string    `json:"id" firestore:"id"`
	Text              string    `json:"text" firestore:"text"`
	Image             string    `json:"image" firestore:"image"`
	Category          string    `json:"category" firestore:"category"`
	Types             []string  `json:"types" firestore:"types"`
	City              string    `json:"city" firestore:"city"`
	OwnerID           string    `json:"owner_id" firestore:"ownerId"`
	OwnerName         string    `json:"owner_name" firestore:"ownerName"`
	OwnerPhoto        string    `json:"owner_photo,omitempty" firestore:"ownerPhoto,omitempty"`
	Featured          bool      `json:"featured" firestore:"featured"`
	RequestedFeatured bool      `json:"requested_featured" firestore:"requestedFeatured"`
	CreatedAt         time.Time `json:"created_at" firestore:"createdAt"`
}

func (l *Listing) HasType(t string) bool {
	for _, lt := range l.Types {
		if lt == t {
			return true
		}
	}
	return false
}
