package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saeedNW/go-divar/services"
	"github.com/saeedNW/go-divar/utils"
)

// OptionController manages the dynamic per-category field definitions.
type OptionController struct {
	option *services.OptionService
}

// NewOptionController creates an OptionController.
func NewOptionController(option *services.OptionService) *OptionController {
	return &OptionController{option: option}
}

// Create defines a new option on a category.
func (o *OptionController) Create(ctx *gin.Context) {
	var dto services.OptionDTO
	if err := ctx.ShouldBind(&dto); err != nil {
		ctx.Error(utils.NewValidation(map[string]string{"body": "invalid request payload"}))
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(dto.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(dto.Key) == "" {
		fields["key"] = "key is required"
	}
	if strings.TrimSpace(dto.Category) == "" {
		fields["category"] = "category is required"
	}
	if len(fields) > 0 {
		ctx.Error(utils.NewValidation(fields))
		return
	}

	option, err := o.option.Create(ctx.Request.Context(), dto)
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusCreated, services.MsgOptionCreated, gin.H{"option": option})
}

// Find lists every option with its category summary.
func (o *OptionController) Find(ctx *gin.Context) {
	options, err := o.option.Find(ctx.Request.Context())
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"options": options})
}

// FindByID returns one option definition.
func (o *OptionController) FindByID(ctx *gin.Context) {
	option, err := o.option.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"option": option})
}

// FindByCategoryID lists the options of one category.
func (o *OptionController) FindByCategoryID(ctx *gin.Context) {
	options, err := o.option.FindByCategoryID(ctx.Request.Context(), ctx.Param("categoryId"))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"options": options})
}

// FindByCategorySlug lists the options of a category referenced by slug,
// flattened with the category's identity fields.
func (o *OptionController) FindByCategorySlug(ctx *gin.Context) {
	options, err := o.option.FindByCategorySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"options": options})
}

// Update applies a partial update to an option.
func (o *OptionController) Update(ctx *gin.Context) {
	var dto services.OptionDTO
	if err := ctx.ShouldBind(&dto); err != nil {
		ctx.Error(utils.NewValidation(map[string]string{"body": "invalid request payload"}))
		return
	}

	if err := o.option.Update(ctx.Request.Context(), ctx.Param("id"), dto); err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, services.MsgOptionUpdated, nil)
}

// Remove deletes an option definition.
func (o *OptionController) Remove(ctx *gin.Context) {
	if err := o.option.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		ctx.Error(err)
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, services.MsgOptionDeleted, nil)
}
