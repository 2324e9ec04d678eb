package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptionCollection is the mongo collection holding per-category option definitions.
const OptionCollection = "options"

// Option value types accepted by the admin panel.
const (
	OptionTypeNumber  = "number"
	OptionTypeString  = "string"
	OptionTypeArray   = "array"
	OptionTypeBoolean = "boolean"
)

// IsValidOptionType reports whether t is one of the supported option types.
func IsValidOptionType(t string) bool {
	switch t {
	case OptionTypeNumber, OptionTypeString, OptionTypeArray, OptionTypeBoolean:
		return true
	}
	return false
}

// Option defines a dynamic field attached to posts of a category.
// The (category, key) pair is unique.
type Option struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Key       string             `bson:"key" json:"key"`
	Type      string             `bson:"type" json:"type"`
	Enum      []string           `bson:"enum" json:"enum"`
	Guid      string             `bson:"guid,omitempty" json:"guid,omitempty"`
	Required  bool               `bson:"required" json:"required"`
	Category  primitive.ObjectID `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OptionCategory is the category summary joined onto option list reads.
type OptionCategory struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}

// PopulatedOption is an option with its category summary attached in place of
// the raw category reference.
type PopulatedOption struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Key       string             `bson:"key" json:"key"`
	Type      string             `bson:"type" json:"type"`
	Enum      []string           `bson:"enum" json:"enum"`
	Guid      string             `bson:"guid,omitempty" json:"guid,omitempty"`
	Required  bool               `bson:"required" json:"required"`
	Category  OptionCategory     `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FlatOption is the read model produced by the by-category-slug aggregation:
// the category's slug, name and icon flattened onto the option record.
type FlatOption struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Key          string             `bson:"key" json:"key"`
	Type         string             `bson:"type" json:"type"`
	Enum         []string           `bson:"enum" json:"enum"`
	Guid         string             `bson:"guid,omitempty" json:"guid,omitempty"`
	Required     bool               `bson:"required" json:"required"`
	CategorySlug string             `bson:"categorySlug" json:"categorySlug"`
	CategoryName string             `bson:"categoryName" json:"categoryName"`
	CategoryIcon string             `bson:"categoryIcon" json:"categoryIcon"`
}
