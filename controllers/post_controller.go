package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saeedNW/go-divar/middleware"
	"github.com/saeedNW/go-divar/services"
	"github.com/saeedNW/go-divar/utils"
)

// MaxPostImages caps the number of images accepted per post.
const MaxPostImages = 10

// PostController serves the server-rendered trade post pages and their
// form handlers.
type PostController struct {
	post     *services.PostService
	category *services.CategoryService
	geo      *utils.MapClient
}

// NewPostController creates a PostController.
func NewPostController(post *services.PostService, category *services.CategoryService, geo *utils.MapClient) *PostController {
	return &PostController{post: post, category: category, geo: geo}
}

// NewPostPage renders the create-post form. Without a slug it shows the
// category picker; with one it shows the category's dynamic fields.
func (p *PostController) NewPostPage(ctx *gin.Context) {
	slug := ctx.Query("slug")

	categories, err := p.category.Find(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}

	data := gin.H{
		"categories": categories,
		"slug":       slug,
	}
	if slug != "" {
		category, err := p.category.CheckExistBySlug(ctx.Request.Context(), slug)
		if err != nil {
			ctx.Error(err)
			return
		}
		options, err := p.post.GetCategoryOptions(ctx.Request.Context(), slug)
		if err != nil {
			ctx.Error(err)
			return
		}
		data["category"] = category
		data["options"] = options
	}

	ctx.HTML(http.StatusOK, "create-post.html", data)
}

// Create handles the multipart new-post submission: validates the fixed
// fields, stores the images, reverse geocodes the coordinate and extracts the
// category specific values from the option_ prefixed form fields.
func (p *PostController) Create(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.Error(utils.NewUnauthorized("Authorization failed, please retry"))
		return
	}

	if err := ctx.Request.ParseMultipartForm(utils.MaxImageSize); err != nil {
		ctx.Error(utils.NewBadRequest(services.MsgInvalidRequest))
		return
	}
	form := ctx.Request.PostForm
	utils.FixFormNumbers(form)

	fields := map[string]string{}
	title := strings.TrimSpace(form.Get("title"))
	content := strings.TrimSpace(form.Get("content"))
	if title == "" {
		fields["title"] = "title is required"
	}
	if content == "" {
		fields["content"] = "content is required"
	}

	amount, err := strconv.ParseFloat(form.Get("amount"), 64)
	if form.Get("amount") != "" && err != nil {
		fields["amount"] = "amount must be a number"
	}

	category, catErr := p.category.CheckExistByID(ctx.Request.Context(), form.Get("category"))
	if catErr != nil {
		fields["category"] = "a valid category is required"
	}

	lat, lng := parseCoordinate(form)
	if len(fields) > 0 {
		ctx.Error(utils.NewValidation(fields))
		return
	}

	tempImages, err := utils.SaveTempImages(ctx, "images", MaxPostImages)
	if err != nil {
		ctx.Error(err)
		return
	}

	detail, err := p.geo.ReverseGeocode(ctx.Request.Context(), lat, lng)
	if err != nil {
		ctx.Error(utils.NewInternal(err))
		return
	}

	images, err := utils.FinalizeUploads(tempImages, "posts")
	if err != nil {
		ctx.Error(err)
		return
	}

	_, err = p.post.Create(ctx.Request.Context(), user.ID, services.CreatePostDTO{
		Title:      utils.Sanitize(title),
		Amount:     amount,
		Content:    utils.Sanitize(content),
		Category:   category.ID,
		Province:   detail.Province,
		City:       detail.City,
		District:   detail.District,
		Address:    detail.Address,
		Coordinate: []float64{lat, lng},
		Images:     images,
		Options:    ExtractNewPostOptions(form),
	})
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SetFlash(ctx, services.MsgPostCreated)
	ctx.Redirect(http.StatusFound, "/post/my")
}

// FindMyPosts renders the authenticated user's own posts.
func (p *PostController) FindMyPosts(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.Error(utils.NewUnauthorized("Authorization failed, please retry"))
		return
	}

	posts, err := p.post.FindByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.HTML(http.StatusOK, "my-posts.html", gin.H{
		"posts":   posts,
		"message": utils.PopFlash(ctx),
	})
}

// Remove deletes one of the user's posts and returns to the listing.
func (p *PostController) Remove(ctx *gin.Context) {
	if err := p.post.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		ctx.Error(err)
		return
	}
	utils.SetFlash(ctx, services.MsgPostDeleted)
	ctx.Redirect(http.StatusFound, "/post/my")
}

// ShowPost renders a single post with the owner's contact number.
func (p *PostController) ShowPost(ctx *gin.Context) {
	post, err := p.post.CheckExist(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.HTML(http.StatusOK, "post.html", gin.H{"post": post})
}

// ListPosts renders the public landing page. A category slug narrows the
// listing to that category's subtree and a search term filters by text.
func (p *PostController) ListPosts(ctx *gin.Context) {
	slug := ctx.Query("category")
	search := ctx.Query("search")

	posts, err := p.post.FindAll(ctx.Request.Context(), slug, search)
	if err != nil {
		ctx.Error(err)
		return
	}
	categories, err := p.category.Find(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"posts":      posts,
		"categories": categories,
		"slug":       slug,
		"search":     search,
	})
}

// ExtractNewPostOptions collects the dynamic per-category values from a
// submitted form. A field named "option_<key>" contributes its value under
// <key>; everything else is ignored. Only the first underscore separates the
// prefix, so keys may themselves contain underscores.
func ExtractNewPostOptions(form url.Values) map[string]any {
	options := map[string]any{}
	for name, values := range form {
		prefix, key, found := strings.Cut(name, "_")
		if !found || prefix != "option" || key == "" {
			continue
		}
		if len(values) > 0 {
			options[key] = values[0]
		}
	}
	return options
}

func parseCoordinate(form url.Values) (float64, float64) {
	lat, _ := strconv.ParseFloat(form.Get("lat"), 64)
	lng, _ := strconv.ParseFloat(form.Get("lng"), 64)
	return lat, lng
}
