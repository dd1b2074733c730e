package ingredient

import (
	"context"
	"sort"
	"testing"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeIngredientRepository keeps one assignment row per recipe-ingredient
// pair, mirroring the join the SQL listing walks, so the assigned-only path
// has to collapse duplicates itself.
type fakeIngredientRepository struct {
	ingredients map[uint]*entities.Ingredient
	assignments []uint // ingredient ids, one entry per recipe using it
	nextID      uint
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{ingredients: make(map[uint]*entities.Ingredient), nextID: 1}
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	ingredient.ID = f.nextID
	f.nextID++
	f.ingredients[ingredient.ID] = ingredient
	return nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, userID string, assignedOnly bool) ([]*entities.Ingredient, error) {
	var result []*entities.Ingredient
	if assignedOnly {
		seen := make(map[uint]struct{})
		for _, id := range f.assignments {
			ing, ok := f.ingredients[id]
			if !ok || ing.UserID.String() != userID {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, ing)
		}
	} else {
		for _, ing := range f.ingredients {
			if ing.UserID.String() == userID {
				result = append(result, ing)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeIngredientRepository) GetIngredientsByIDs(_ context.Context, ids []uint) ([]*entities.Ingredient, error) {
	var result []*entities.Ingredient
	for _, id := range ids {
		if ing, ok := f.ingredients[id]; ok {
			result = append(result, ing)
		}
	}
	return result, nil
}

func TestCreateIngredient(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)
	owner := uuid.New()

	t.Run("stamps owner", func(t *testing.T) {
		res, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "salt"}, owner.String())
		require.NoError(t, err)
		require.Equal(t, "salt", res.Name)
		require.Equal(t, owner, repo.ingredients[res.ID].UserID)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		_, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "salt"}, "not-a-uuid")
		require.ErrorIs(t, err, domain.ErrParseUUID)
	})
}

func TestGetIngredients(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)
	owner := uuid.New()
	stranger := uuid.New()

	for _, seed := range []struct {
		user uuid.UUID
		name string
	}{
		{owner, "salt"},
		{owner, "basil"},
		{stranger, "pepper"},
	} {
		require.NoError(t, repo.CreateIngredient(context.Background(), &entities.Ingredient{UserID: seed.user, Name: seed.name}))
	}

	ingredients, err := svc.GetIngredients(context.Background(), owner.String(), false)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	require.Equal(t, "basil", ingredients[0].Name)
	require.Equal(t, "salt", ingredients[1].Name)
}

func TestGetIngredientsAssignedOnly(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)
	owner := uuid.New()

	salt := &entities.Ingredient{UserID: owner, Name: "salt"}
	basil := &entities.Ingredient{UserID: owner, Name: "basil"}
	unused := &entities.Ingredient{UserID: owner, Name: "saffron"}
	for _, ing := range []*entities.Ingredient{salt, basil, unused} {
		require.NoError(t, repo.CreateIngredient(context.Background(), ing))
	}
	// salt is on two recipes, basil on one, saffron on none
	repo.assignments = []uint{salt.ID, salt.ID, basil.ID}

	t.Run("excludes unassigned ingredients", func(t *testing.T) {
		ingredients, err := svc.GetIngredients(context.Background(), owner.String(), true)
		require.NoError(t, err)
		for _, ing := range ingredients {
			require.NotEqual(t, "saffron", ing.Name)
		}
	})

	t.Run("ingredient shared by several recipes listed once", func(t *testing.T) {
		ingredients, err := svc.GetIngredients(context.Background(), owner.String(), true)
		require.NoError(t, err)

		names := make([]string, 0, len(ingredients))
		for _, ing := range ingredients {
			names = append(names, ing.Name)
		}
		require.Equal(t, []string{"basil", "salt"}, names)
	})
}
