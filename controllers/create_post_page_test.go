package controllers

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saeedNW/go-divar/models"
)

func renderCreatePostPage(t *testing.T, data gin.H) string {
	t.Helper()
	tmpl, err := template.ParseFiles("../templates/create-post.html")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

func TestCreatePostPageListsChildCategories(t *testing.T) {
	category := &models.Category{
		ID:   primitive.NewObjectID(),
		Name: "خودرو",
		Slug: "vehicles",
		Children: []models.Category{
			{ID: primitive.NewObjectID(), Name: "سواری", Slug: "cars"},
			{ID: primitive.NewObjectID(), Name: "موتورسیکلت", Slug: "motorcycles"},
		},
	}

	page := renderCreatePostPage(t, gin.H{
		"slug":     category.Slug,
		"category": category,
		"options":  []models.FlatOption{},
	})

	// deeper categories stay reachable from the form page
	assert.Contains(t, page, "/post/create?slug=cars")
	assert.Contains(t, page, "/post/create?slug=motorcycles")
	assert.Contains(t, page, category.ID.Hex())
}

func TestCreatePostPageWithoutSlugShowsPicker(t *testing.T) {
	page := renderCreatePostPage(t, gin.H{
		"slug":       "",
		"categories": []models.Category{{Name: "املاک", Slug: "real-estate"}},
	})

	assert.Contains(t, page, "/post/create?slug=real-estate")
	assert.NotContains(t, page, "<form")
}
