package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryCollection is the mongo collection holding categories.
const CategoryCollection = "categories"

// Category is a node in the category tree. Parents is the materialized
// ancestor list: the immediate parent first, then its ancestors in order,
// deduplicated. It is rebuilt from the parent document at creation time.
type Category struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name    string               `bson:"name" json:"name"`
	Slug    string               `bson:"slug" json:"slug"`
	Icon    string               `bson:"icon" json:"icon"`
	Parent  *primitive.ObjectID  `bson:"parent,omitempty" json:"parent,omitempty"`
	Parents []primitive.ObjectID `bson:"parents" json:"parents"`
	// Children carries one level of sub categories on read paths. It is
	// resolved through a back-reference lookup by parent id, never stored.
	Children  []Category `bson:"children,omitempty" json:"children"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// BuildParents computes the ancestor list for a node whose immediate parent is
// the given category: the parent itself followed by the parent's own ancestors,
// order preserving and deduplicated.
func BuildParents(parent *Category) []primitive.ObjectID {
	parents := make([]primitive.ObjectID, 0, len(parent.Parents)+1)
	seen := make(map[primitive.ObjectID]bool, len(parent.Parents)+1)

	for _, id := range append([]primitive.ObjectID{parent.ID}, parent.Parents...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		parents = append(parents, id)
	}
	return parents
}
