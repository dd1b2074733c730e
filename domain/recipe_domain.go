package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrInvalidFilterID    = errors.New("invalid filter id")
)

type (
	CreateRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		TimeMinutes int     `json:"time_minutes" validate:"required,min=1"`
		Price       float64 `json:"price" validate:"required,min=0"`
		Link        string  `json:"link" validate:"omitempty,url"`
		TagIDs      []uint  `json:"tags" validate:"omitempty"`
		IngredIDs   []uint  `json:"ingredients" validate:"omitempty"`
	}

	// UpdateRecipeRequest carries a full replacement. Absent association
	// lists clear the links, matching a full update.
	UpdateRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		TimeMinutes int     `json:"time_minutes" validate:"required,min=1"`
		Price       float64 `json:"price" validate:"required,min=0"`
		Link        string  `json:"link" validate:"omitempty,url"`
		TagIDs      []uint  `json:"tags" validate:"omitempty"`
		IngredIDs   []uint  `json:"ingredients" validate:"omitempty"`
	}

	// PatchRecipeRequest carries a partial update. Nil fields keep their
	// stored values, nil association lists keep the links.
	PatchRecipeRequest struct {
		Title       *string  `json:"title" validate:"omitempty"`
		TimeMinutes *int     `json:"time_minutes" validate:"omitempty,min=1"`
		Price       *float64 `json:"price" validate:"omitempty,min=0"`
		Link        *string  `json:"link" validate:"omitempty"`
		TagIDs      *[]uint  `json:"tags" validate:"omitempty"`
		IngredIDs   *[]uint  `json:"ingredients" validate:"omitempty"`
	}

	RecipeFilter struct {
		TagIDs    []uint
		IngredIDs []uint
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID          uint      `json:"id"`
		Title       string    `json:"title"`
		TimeMinutes int       `json:"time_minutes"`
		Price       float64   `json:"price"`
		Link        string    `json:"link,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}
)
