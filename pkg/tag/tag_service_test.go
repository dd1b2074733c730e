package tag

import (
	"context"
	"sort"
	"testing"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeTagRepository keeps one assignment row per recipe-tag pair, so an
// assigned-only listing walks join rows the way the SQL does and has to
// collapse duplicates itself.
type fakeTagRepository struct {
	tags        map[uint]*entities.Tag
	assignments []uint // tag ids, one entry per recipe using the tag
	nextID      uint
}

func newFakeTagRepository() *fakeTagRepository {
	return &fakeTagRepository{tags: make(map[uint]*entities.Tag), nextID: 1}
}

func (f *fakeTagRepository) CreateTag(_ context.Context, tag *entities.Tag) error {
	tag.ID = f.nextID
	f.nextID++
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepository) GetTags(_ context.Context, userID string, assignedOnly bool) ([]*entities.Tag, error) {
	var result []*entities.Tag
	if assignedOnly {
		seen := make(map[uint]struct{})
		for _, id := range f.assignments {
			t, ok := f.tags[id]
			if !ok || t.UserID.String() != userID {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, t)
		}
	} else {
		for _, t := range f.tags {
			if t.UserID.String() == userID {
				result = append(result, t)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeTagRepository) GetTagsByIDs(_ context.Context, ids []uint) ([]*entities.Tag, error) {
	var result []*entities.Tag
	for _, id := range ids {
		if t, ok := f.tags[id]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func TestCreateTag(t *testing.T) {
	repo := newFakeTagRepository()
	svc := NewTagService(repo)
	owner := uuid.New()

	t.Run("stamps owner", func(t *testing.T) {
		res, err := svc.CreateTag(context.Background(), domain.CreateTagRequest{Name: "vegan"}, owner.String())
		require.NoError(t, err)
		require.Equal(t, "vegan", res.Name)
		require.Equal(t, owner, repo.tags[res.ID].UserID)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		_, err := svc.CreateTag(context.Background(), domain.CreateTagRequest{Name: "vegan"}, "not-a-uuid")
		require.ErrorIs(t, err, domain.ErrParseUUID)
	})
}

func TestGetTags(t *testing.T) {
	repo := newFakeTagRepository()
	svc := NewTagService(repo)
	owner := uuid.New()
	stranger := uuid.New()

	for _, seed := range []struct {
		user uuid.UUID
		name string
	}{
		{owner, "vegan"},
		{owner, "dessert"},
		{stranger, "spicy"},
	} {
		require.NoError(t, repo.CreateTag(context.Background(), &entities.Tag{UserID: seed.user, Name: seed.name}))
	}

	t.Run("scoped to owner, sorted by name", func(t *testing.T) {
		tags, err := svc.GetTags(context.Background(), owner.String(), false)
		require.NoError(t, err)
		require.Len(t, tags, 2)
		require.Equal(t, "dessert", tags[0].Name)
		require.Equal(t, "vegan", tags[1].Name)
	})

	t.Run("other users see nothing of the owner's", func(t *testing.T) {
		tags, err := svc.GetTags(context.Background(), stranger.String(), false)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		require.Equal(t, "spicy", tags[0].Name)
	})
}

func TestGetTagsAssignedOnly(t *testing.T) {
	repo := newFakeTagRepository()
	svc := NewTagService(repo)
	owner := uuid.New()

	vegan := &entities.Tag{UserID: owner, Name: "vegan"}
	dessert := &entities.Tag{UserID: owner, Name: "dessert"}
	unused := &entities.Tag{UserID: owner, Name: "unused"}
	for _, tag := range []*entities.Tag{vegan, dessert, unused} {
		require.NoError(t, repo.CreateTag(context.Background(), tag))
	}
	// vegan is on two recipes, dessert on one, unused on none
	repo.assignments = []uint{vegan.ID, vegan.ID, dessert.ID}

	t.Run("excludes unassigned tags", func(t *testing.T) {
		tags, err := svc.GetTags(context.Background(), owner.String(), true)
		require.NoError(t, err)
		for _, tag := range tags {
			require.NotEqual(t, "unused", tag.Name)
		}
	})

	t.Run("tag shared by several recipes listed once", func(t *testing.T) {
		tags, err := svc.GetTags(context.Background(), owner.String(), true)
		require.NoError(t, err)

		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		require.Equal(t, []string{"dessert", "vegan"}, names)
	})
}
