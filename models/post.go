package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostCollection is the mongo collection holding listings.
const PostCollection = "posts"

// Post is a classified listing. Province through Address are derived from
// reverse geocoding the submitted coordinate. Options is a free-form map of
// option key to submitted value, extracted from option_ prefixed form fields.
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Amount     float64            `bson:"amount" json:"amount"`
	Content    string             `bson:"content" json:"content"`
	Category   primitive.ObjectID `bson:"category" json:"category"`
	Province   string             `bson:"province,omitempty" json:"province,omitempty"`
	City       string             `bson:"city,omitempty" json:"city,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Coordinate []float64          `bson:"coordinate" json:"coordinate"`
	Images     []string           `bson:"images" json:"images"`
	Options    map[string]any     `bson:"options" json:"options"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
	// UserMobile is joined onto single-post reads for contact display.
	UserMobile string `bson:"userMobile,omitempty" json:"userMobile,omitempty"`
}
