package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saeedNW/go-divar/models"
	"github.com/saeedNW/go-divar/utils"
)

// Option messages.
const (
	MsgOptionCreated      = "option created successfully"
	MsgOptionNotFound     = "option not found"
	MsgOptionAlreadyExist = "option already exist"
	MsgOptionDeleted      = "option removed successfully"
	MsgOptionUpdated      = "option updated successfully"
	MsgProcessFailed      = "process failed, please try again"
)

// OptionDTO carries loosely typed option input. Enum accepts either a
// delimited string or an array; Required accepts boolean or boolean-ish
// string values.
type OptionDTO struct {
	Title    string `json:"title"`
	Key      string `json:"key"`
	Type     string `json:"type"`
	Enum     any    `json:"enum"`
	Guid     string `json:"guid"`
	Required any    `json:"required"`
	Category string `json:"category"`
	// Slug, when set on update, signals that the key should be re-derived
	// and its uniqueness re-checked.
	Slug string `json:"slug"`
}

// OptionService manages per-category dynamic field definitions.
type OptionService struct {
	options  *mongo.Collection
	category *CategoryService
}

// NewOptionService creates an OptionService bound to the given database.
func NewOptionService(db *mongo.Database, category *CategoryService) *OptionService {
	return &OptionService{
		options:  db.Collection(models.OptionCollection),
		category: category,
	}
}

// Create validates and persists a new option definition. The key is
// normalized and must be unique within the category.
func (s *OptionService) Create(ctx context.Context, dto OptionDTO) (*models.Option, error) {
	if !models.IsValidOptionType(dto.Type) {
		return nil, utils.NewValidation(map[string]string{"type": "type must be one of number, string, array or boolean"})
	}

	category, err := s.category.CheckExistByID(ctx, dto.Category)
	if err != nil {
		return nil, err
	}

	key := utils.SlugifyKey(dto.Key)
	if err := s.AlreadyExistByCategoryAndKey(ctx, key, category.ID, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	option := models.Option{
		Title:     dto.Title,
		Key:       key,
		Type:      dto.Type,
		Enum:      NormalizeEnum(dto.Enum),
		Guid:      dto.Guid,
		Required:  IsTrue(dto.Required),
		Category:  category.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := s.options.InsertOne(ctx, option)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		option.ID = oid
	}
	return &option, nil
}

// Find lists every option, newest first, with its category summary joined on.
func (s *OptionService) Find(ctx context.Context) ([]models.PopulatedOption, error) {
	return s.findPopulated(ctx, bson.M{})
}

// FindByCategoryID lists the options of a single category.
func (s *OptionService) FindByCategoryID(ctx context.Context, categoryID string) ([]models.PopulatedOption, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, utils.NewNotFound(MsgCategoryNotFound)
	}
	return s.findPopulated(ctx, bson.M{"category": oid})
}

// FindByCategorySlug builds the flattened read model for a category slug:
// every option joined with its category, the category's slug, name and icon
// promoted to top-level fields, filtered by the requested slug. The join is
// derived here independently of the category service.
func (s *OptionService) FindByCategorySlug(ctx context.Context, slug string) ([]models.FlatOption, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         models.CategoryCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{
			"categorySlug": "$category.slug",
			"categoryName": "$category.name",
			"categoryIcon": "$category.icon",
		}}},
		{{Key: "$project", Value: bson.M{"category": 0}}},
		{{Key: "$match", Value: bson.M{"categorySlug": slug}}},
	}

	cursor, err := s.options.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	var result []models.FlatOption
	if err := cursor.All(ctx, &result); err != nil {
		return nil, utils.NewInternal(err)
	}
	return result, nil
}

// FindByID resolves a single option.
func (s *OptionService) FindByID(ctx context.Context, id string) (*models.Option, error) {
	return s.CheckExistByID(ctx, id)
}

// Update applies a partial update. The key is re-derived and its uniqueness
// re-checked only when a slug value is provided. An empty enum is dropped from
// the update document instead of erasing the stored list, and required is
// dropped unless it is a recognizable boolean.
func (s *OptionService) Update(ctx context.Context, id string, dto OptionDTO) error {
	existing, err := s.CheckExistByID(ctx, id)
	if err != nil {
		return err
	}
	category, err := s.category.CheckExistByID(ctx, dto.Category)
	if err != nil {
		return err
	}

	update := bson.M{"updatedAt": time.Now()}
	if dto.Title != "" {
		update["title"] = dto.Title
	}
	if dto.Type != "" {
		if !models.IsValidOptionType(dto.Type) {
			return utils.NewValidation(map[string]string{"type": "type must be one of number, string, array or boolean"})
		}
		update["type"] = dto.Type
	}
	if dto.Guid != "" {
		update["guid"] = dto.Guid
	}
	update["category"] = category.ID

	if key := updateKey(dto); key != "" {
		if err := s.AlreadyExistByCategoryAndKey(ctx, key, category.ID, &existing.ID); err != nil {
			return err
		}
		update["key"] = key
	}

	if enum := NormalizeEnum(dto.Enum); len(enum) > 0 {
		update["enum"] = enum
	}

	if IsTrue(dto.Required) {
		update["required"] = true
	} else if IsFalse(dto.Required) {
		update["required"] = false
	}

	res, err := s.options.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{"$set": update})
	if err != nil {
		return utils.NewInternal(err)
	}
	if res.ModifiedCount <= 0 {
		return utils.NewInternal(errors.New(MsgProcessFailed))
	}
	return nil
}

// updateKey returns the new key for an update request, or "" when the key
// should stay as is. The slug field only signals that a rename was requested;
// the value itself comes from the key field, slugified, with the slug as a
// fallback when no key is sent.
func updateKey(dto OptionDTO) string {
	if dto.Slug == "" {
		return ""
	}
	source := dto.Key
	if source == "" {
		source = dto.Slug
	}
	return utils.SlugifyKey(source)
}

// Remove deletes a single option.
func (s *OptionService) Remove(ctx context.Context, id string) error {
	option, err := s.CheckExistByID(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.options.DeleteOne(ctx, bson.M{"_id": option.ID})
	if err != nil {
		return utils.NewInternal(err)
	}
	if res.DeletedCount <= 0 {
		return utils.NewInternal(errors.New(MsgProcessFailed))
	}
	return nil
}

// CheckExistByID resolves an option by hex id.
func (s *OptionService) CheckExistByID(ctx context.Context, id string) (*models.Option, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewNotFound(MsgOptionNotFound)
	}

	var option models.Option
	err = s.options.FindOne(ctx, bson.M{"_id": oid}).Decode(&option)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFound(MsgOptionNotFound)
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return &option, nil
}

// AlreadyExistByCategoryAndKey fails with Conflict when another option of the
// category already uses the key. except excludes the option being updated.
func (s *OptionService) AlreadyExistByCategoryAndKey(ctx context.Context, key string, category primitive.ObjectID, except *primitive.ObjectID) error {
	filter := bson.M{"category": category, "key": key}
	if except != nil {
		filter["_id"] = bson.M{"$ne": *except}
	}

	err := s.options.FindOne(ctx, filter).Err()
	if err == nil {
		return utils.NewConflict(MsgOptionAlreadyExist)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return utils.NewInternal(err)
}

func (s *OptionService) findPopulated(ctx context.Context, match bson.M) ([]models.PopulatedOption, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.M{"_id": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         models.CategoryCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"category.icon":      0,
			"category.parent":    0,
			"category.parents":   0,
			"category.createdAt": 0,
			"category.updatedAt": 0,
		}}},
	}

	cursor, err := s.options.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	var result []models.PopulatedOption
	if err := cursor.All(ctx, &result); err != nil {
		return nil, utils.NewInternal(err)
	}
	return result, nil
}

// NormalizeEnum coerces an enum value into a clean string slice. Accepted
// inputs: a delimited string ("red,green"), an array of values, or nothing.
func NormalizeEnum(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		return splitEnumString(v)
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	default:
		return []string{}
	}
}

func splitEnumString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsTrue reports whether value is boolean true or the string "true".
func IsTrue(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// IsFalse reports whether value is boolean false or the string "false".
func IsFalse(value any) bool {
	switch v := value.(type) {
	case bool:
		return !v
	case string:
		return v == "false"
	}
	return false
}
