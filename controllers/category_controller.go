package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saeedNW/go-divar/services"
	"github.com/saeedNW/go-divar/utils"
)

// CategoryController manages the category tree endpoints.
type CategoryController struct {
	category *services.CategoryService
}

// NewCategoryController creates a CategoryController.
func NewCategoryController(category *services.CategoryService) *CategoryController {
	return &CategoryController{category: category}
}

type createCategoryRequest struct {
	Name   string `json:"name" form:"name"`
	Icon   string `json:"icon" form:"icon"`
	Slug   string `json:"slug" form:"slug"`
	Parent string `json:"parent" form:"parent"`
}

// Create adds a category. Name and icon are required; parent and slug are
// optional.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req createCategoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.Error(utils.NewValidation(map[string]string{"name": "name is required", "icon": "icon is required"}))
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.Icon) == "" {
		fields["icon"] = "icon is required"
	}
	if len(fields) > 0 {
		ctx.Error(utils.NewValidation(fields))
		return
	}

	category, err := c.category.Create(ctx.Request.Context(), services.CreateCategoryDTO{
		Name:   strings.TrimSpace(req.Name),
		Icon:   strings.TrimSpace(req.Icon),
		Slug:   strings.TrimSpace(req.Slug),
		Parent: strings.TrimSpace(req.Parent),
	})
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SendSuccess(ctx, http.StatusCreated, services.MsgCategoryCreated, gin.H{"category": category})
}

// Find lists root categories with their immediate children attached.
func (c *CategoryController) Find(ctx *gin.Context) {
	categories, err := c.category.Find(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"categories": categories})
}

// FindByID returns one category with its children.
func (c *CategoryController) FindByID(ctx *gin.Context) {
	category, err := c.category.CheckExistByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"category": category})
}

// FindBySlug returns one category with its children.
func (c *CategoryController) FindBySlug(ctx *gin.Context) {
	category, err := c.category.CheckExistBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"category": category})
}

// Remove deletes a single category. Its descendants are left in place.
func (c *CategoryController) Remove(ctx *gin.Context) {
	if err := c.category.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, services.MsgCategoryDeleted, nil)
}
