package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saeedNW/go-divar/models"
	"github.com/saeedNW/go-divar/utils"
)

// Post messages.
const (
	MsgPostCreated    = "post created successfully"
	MsgPostNotFound   = "post not found"
	MsgPostDeleted    = "post removed successfully"
	MsgInvalidRequest = "Invalid request"
)

// CreatePostDTO carries a validated new-post payload. Options holds the
// dynamic per-category values already extracted from the form.
type CreatePostDTO struct {
	Title      string
	Amount     float64
	Content    string
	Category   primitive.ObjectID
	Province   string
	City       string
	District   string
	Address    string
	Coordinate []float64
	Images     []string
	Options    map[string]any
}

// PostService manages trade posts.
type PostService struct {
	posts    *mongo.Collection
	category *CategoryService
	option   *OptionService
}

// NewPostService creates a PostService bound to the given database.
func NewPostService(db *mongo.Database, category *CategoryService, option *OptionService) *PostService {
	return &PostService{
		posts:    db.Collection(models.PostCollection),
		category: category,
		option:   option,
	}
}

// Create persists a new post owned by userID.
func (s *PostService) Create(ctx context.Context, userID primitive.ObjectID, dto CreatePostDTO) (*models.Post, error) {
	now := time.Now()
	post := models.Post{
		Title:      dto.Title,
		UserID:     userID,
		Amount:     dto.Amount,
		Content:    dto.Content,
		Category:   dto.Category,
		Province:   dto.Province,
		City:       dto.City,
		District:   dto.District,
		Address:    dto.Address,
		Coordinate: dto.Coordinate,
		Images:     dto.Images,
		Options:    dto.Options,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := s.posts.InsertOne(ctx, post)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return &post, nil
}

// FindByUser lists the posts owned by a user, newest first.
func (s *PostService) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

// FindAll lists posts for the public listing, newest first. A category slug
// narrows the result to that category and its whole subtree; a search term
// matches title or content case-insensitively.
func (s *PostService) FindAll(ctx context.Context, categorySlug, search string) ([]models.Post, error) {
	filter := bson.M{}

	if categorySlug != "" {
		category, err := s.category.CheckExistBySlug(ctx, categorySlug)
		if err != nil {
			return nil, err
		}
		descendants, err := s.category.FindDescendantIDs(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		ids := append([]primitive.ObjectID{category.ID}, descendants...)
		filter["category"] = bson.M{"$in": ids}
	}

	if search != "" {
		pattern := searchPattern(search)
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
		}
	}

	return s.find(ctx, filter)
}

// searchPattern builds the case-insensitive matcher for a search query. The
// query is taken as a regular expression and demoted to a literal match when
// it does not compile.
func searchPattern(search string) primitive.Regex {
	pattern := search
	if _, err := regexp.Compile(search); err != nil {
		pattern = regexp.QuoteMeta(search)
	}
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

// CheckExist resolves a post by hex id, joining the owner's mobile number on.
// A malformed id is a bad request rather than a not-found.
func (s *PostService) CheckExist(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewBadRequest(MsgInvalidRequest)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         models.UserCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{"userMobile": "$user.mobile"}}},
		{{Key: "$project", Value: bson.M{"user": 0}}},
	}

	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	var result []models.Post
	if err := cursor.All(ctx, &result); err != nil {
		return nil, utils.NewInternal(err)
	}
	if len(result) == 0 {
		return nil, utils.NewNotFound(MsgPostNotFound)
	}
	return &result[0], nil
}

// Remove deletes a post after checking it exists. Ownership is not enforced
// here; the route guard decides who may call it.
func (s *PostService) Remove(ctx context.Context, id string) error {
	post, err := s.CheckExist(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": post.ID})
	if err != nil {
		return utils.NewInternal(err)
	}
	if res.DeletedCount <= 0 {
		return utils.NewInternal(errors.New(MsgProcessFailed))
	}
	return nil
}

// GetCategoryOptions returns the option definitions bound to a category slug,
// used to render the dynamic part of the new-post form.
func (s *PostService) GetCategoryOptions(ctx context.Context, slug string) ([]models.FlatOption, error) {
	if slug == "" {
		return []models.FlatOption{}, nil
	}
	return s.option.FindByCategorySlug(ctx, slug)
}

func (s *PostService) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.M{"_id": -1})
	cursor, err := s.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, utils.NewInternal(err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}
