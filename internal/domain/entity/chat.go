package entity

import (
	"sort"
	"strings"
	"time"
)

// ConversationID derives the chat identifier from the two participant
// uids and the listing id. Sorting before joining means both sides
// compute the same id without a handshake; anyone holding the three
// ids can address the conversation.
func ConversationID(buyerUID, sellerUID, listingID string) string {
	parts := []string{buyerUID, sellerUID, listingID}
	sort.Strings(parts)
	return strings.Join(parts, "_")
}

type Chat struct {
	ID           string    `json:"id" firestore:"id"`
	ListingID    string    `json:"listing_id" firestore:"listingId"`
	Participants []string  `json:"participants" firestore:"participants"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}

// Message is append-only; there is no edit or delete.
type Message struct {
	ID        string    `json:"id" firestore:"id"`
	Text      string    `json:"text" firestore:"text"`
	From      string    `json:"from" firestore:"from"`
	FromName  string    `json:"from_name" firestore:"fromName"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
