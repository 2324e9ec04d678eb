package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saeedNW/go-divar/models"
	"github.com/saeedNW/go-divar/utils"
)

// Category messages.
const (
	MsgCategoryCreated      = "category created successfully"
	MsgCategoryNotFound     = "category notfound"
	MsgCategoryAlreadyExist = "category already exist"
	MsgCategoryDeleted      = "category removed successfully"
)

// CreateCategoryDTO carries sanitized input for category creation.
type CreateCategoryDTO struct {
	Name   string
	Icon   string
	Slug   string
	Parent string // hex object id, empty for root categories
}

// CategoryService manages the category tree and its materialized ancestor lists.
type CategoryService struct {
	categories *mongo.Collection
}

// NewCategoryService creates a CategoryService bound to the given database.
func NewCategoryService(db *mongo.Database) *CategoryService {
	return &CategoryService{categories: db.Collection(models.CategoryCollection)}
}

// Create persists a new category node. When a parent is given its ancestor
// chain is copied onto the node, immediate parent first. An explicit slug is
// normalized and must be globally unique; a slug derived from the name skips
// the uniqueness check (kept as-is from the legacy implementation).
func (s *CategoryService) Create(ctx context.Context, dto CreateCategoryDTO) (*models.Category, error) {
	now := time.Now()
	category := models.Category{
		Name:      dto.Name,
		Icon:      dto.Icon,
		Parents:   []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if dto.Parent != "" {
		parent, err := s.CheckExistByID(ctx, dto.Parent)
		if err != nil {
			return nil, err
		}
		category.Parent = &parent.ID
		category.Parents = models.BuildParents(parent)
	}

	if dto.Slug != "" {
		category.Slug = utils.Slugify(dto.Slug)
		if err := s.AlreadyExistBySlug(ctx, category.Slug); err != nil {
			return nil, err
		}
	} else {
		category.Slug = utils.Slugify(dto.Name)
	}

	res, err := s.categories.InsertOne(ctx, category)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	return &category, nil
}

// Find returns the root categories, each populated with one level of children.
func (s *CategoryService) Find(ctx context.Context) ([]models.Category, error) {
	return s.FindByParent(ctx, nil)
}

// FindByParent lists categories under the given parent (nil for roots),
// populated with one level of children.
func (s *CategoryService) FindByParent(ctx context.Context, parent *primitive.ObjectID) ([]models.Category, error) {
	filter := bson.M{"parent": bson.M{"$exists": false}}
	if parent != nil {
		filter = bson.M{"parent": *parent}
	}

	cursor, err := s.categories.Find(ctx, filter)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, utils.NewInternal(err)
	}

	if err := s.attachChildren(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Remove deletes a single category document. Children are not reparented or
// cascade-deleted; keeping the tree consistent is the caller's responsibility.
func (s *CategoryService) Remove(ctx context.Context, id string) error {
	category, err := s.CheckExistByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.categories.DeleteOne(ctx, bson.M{"_id": category.ID}); err != nil {
		return utils.NewInternal(err)
	}
	return nil
}

// CheckExistByID resolves a category by hex id, populated with its children.
func (s *CategoryService) CheckExistByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewNotFound(MsgCategoryNotFound)
	}

	var category models.Category
	err = s.categories.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFound(MsgCategoryNotFound)
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	single := []models.Category{category}
	if err := s.attachChildren(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// CheckExistBySlug resolves a category by slug, populated with its children.
func (s *CategoryService) CheckExistBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := s.categories.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFound(MsgCategoryNotFound)
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	single := []models.Category{category}
	if err := s.attachChildren(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// AlreadyExistBySlug fails with Conflict when the slug is taken.
func (s *CategoryService) AlreadyExistBySlug(ctx context.Context, slug string) error {
	err := s.categories.FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == nil {
		return utils.NewConflict(MsgCategoryAlreadyExist)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return utils.NewInternal(err)
}

// FindDescendantIDs returns the ids of every category that lists the given
// category in its ancestor chain, i.e. the whole subtree below it.
func (s *CategoryService) FindDescendantIDs(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := s.categories.Find(ctx, bson.M{"parents": id},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, utils.NewInternal(err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// attachChildren resolves one level of children for every category in the
// slice with a single back-reference query keyed by parent id.
func (s *CategoryService) attachChildren(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	cursor, err := s.categories.Find(ctx, bson.M{"parent": bson.M{"$in": ids}})
	if err != nil {
		return utils.NewInternal(err)
	}
	var children []models.Category
	if err := cursor.All(ctx, &children); err != nil {
		return utils.NewInternal(err)
	}

	byParent := make(map[primitive.ObjectID][]models.Category, len(categories))
	for _, child := range children {
		if child.Parent == nil {
			continue
		}
		byParent[*child.Parent] = append(byParent[*child.Parent], child)
	}
	for i := range categories {
		categories[i].Children = byParent[categories[i].ID]
	}
	return nil
}
