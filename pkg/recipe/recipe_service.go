package recipe

import (
	"context"
	"errors"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/ingredient"
	"recipebox/pkg/tag"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, userID string, filter domain.RecipeFilter) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id uint, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		PatchRecipe(ctx context.Context, id uint, req domain.PatchRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id uint, userID string) error
		UploadRecipeImage(ctx context.Context, id uint, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

// getOwnedRecipe loads a recipe and hides it from anyone but its owner.
func (s *recipeService) getOwnedRecipe(ctx context.Context, id uint, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID.String() != userID {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, req.TagIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, req.IngredIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		UserID:      userUUID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, filter domain.RecipeFilter) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe.Title = req.Title
	recipe.TimeMinutes = req.TimeMinutes
	recipe.Price = req.Price
	recipe.Link = req.Link
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	// Full update replaces both association sets; an omitted list clears it.
	tags, err := s.tagRepository.GetTagsByIDs(ctx, req.TagIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	recipe.Tags = tags

	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, req.IngredIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	recipe.Ingredients = ingredients

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) PatchRecipe(ctx context.Context, id uint, req domain.PatchRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	// Partial update touches an association set only when the field is present.
	if req.TagIDs != nil {
		tags, err := s.tagRepository.GetTagsByIDs(ctx, *req.TagIDs)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Tags = tags
	}
	if req.IngredIDs != nil {
		ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, *req.IngredIDs)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Ingredients = ingredients
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return err
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id uint, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	var objectKey string
	var uploadErr error
	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(uuid.New().String(), req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(uuid.New().String(), req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		if errors.Is(uploadErr, storage.ErrContentTypeNotAllowed) {
			return domain.RecipeDetailResponse{}, domain.ErrInvalidImageFormat
		}
		return domain.RecipeDetailResponse{}, uploadErr
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImageURL:    recipe.ImageURL,
		CreatedAt:   recipe.CreatedAt,
	}
}

func toRecipeDetailResponse(recipe *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.TagResponse{ID: t.ID, Name: t.Name})
	}
	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, i := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{ID: i.ID, Name: i.Name})
	}
	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Tags:           tags,
		Ingredients:    ingredients,
	}
}
