package service

import (
	"context"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"

	"github.com/google/uuid"
)

type RecipeService interface {
	Create(ctx context.Context, req dto.RecipeRequest) (*dto.RecipeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.RecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter dto.RecipeFilter) (*dto.RecipeListResponse, error)
}

type recipeService struct {
	repo repository.RecipeRepository
}

func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

func (s *recipeService) Create(ctx context.Context, req dto.RecipeRequest) (*dto.RecipeResponse, error) {
	rec := &model.Recipe{
		Name:         req.Name,
		Ingredients:  toModelIngredients(req.Ingredients),
		SellingPrice: req.SellingPrice,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return recipeToResponse(rec), nil
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req dto.RecipeRequest) (*dto.RecipeResponse, error) {
	rec := &model.Recipe{
		Name:         req.Name,
		Ingredients:  toModelIngredients(req.Ingredients),
		SellingPrice: req.SellingPrice,
	}
	if err := s.repo.Replace(ctx, id, rec); err != nil {
		return nil, apierror.NotFound("Recipe not found")
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recipeToResponse(updated), nil
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NotFound("Recipe not found")
	}
	return nil
}

func (s *recipeService) List(ctx context.Context, filter dto.RecipeFilter) (*dto.RecipeListResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	recipes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	results := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		results = append(results, *recipeToResponse(&recipes[i]))
	}
	return &dto.RecipeListResponse{Results: results, Total: total}, nil
}

func toModelIngredients(in []dto.RecipeIngredientDTO) []model.RecipeIngredient {
	out := make([]model.RecipeIngredient, 0, len(in))
	for _, ing := range in {
		out = append(out, model.RecipeIngredient{StockItemID: ing.StockItemID, Quantity: ing.Quantity})
	}
	return out
}

func recipeToResponse(rec *model.Recipe) *dto.RecipeResponse {
	ingredients := make([]dto.RecipeIngredientDTO, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		ingredients = append(ingredients, dto.RecipeIngredientDTO{StockItemID: ing.StockItemID, Quantity: ing.Quantity})
	}
	return &dto.RecipeResponse{
		ID:           rec.ID.String(),
		Name:         rec.Name,
		Ingredients:  ingredients,
		SellingPrice: rec.SellingPrice,
	}
}
