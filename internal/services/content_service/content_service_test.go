package services_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/repository"
	services "photoclub_backend/internal/services/content_service"
	"photoclub_backend/internal/storage"
	"photoclub_backend/internal/transport/http/dto"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) List(ctx context.Context) ([]models.Activity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) Insert(ctx context.Context, activity models.Activity) (models.Activity, error) {
	args := m.Called(ctx, activity)
	return args.Get(0).(models.Activity), args.Error(1)
}

func (m *MockActivityRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	args := m.Called(ctx, id, title)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExhibitionRepository struct {
	mock.Mock
}

func (m *MockExhibitionRepository) List(ctx context.Context) ([]models.Exhibition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) Insert(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error) {
	args := m.Called(ctx, exhibition)
	return args.Get(0).(models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) Update(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error) {
	args := m.Called(ctx, exhibition)
	return args.Get(0).(models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPhotographerRepository struct {
	mock.Mock
}

func (m *MockPhotographerRepository) List(ctx context.Context) ([]models.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockPhotographerRepository) Insert(ctx context.Context, member models.Member) (int64, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotographerRepository) Update(ctx context.Context, member models.Member, id int64, oldName, oldGeneration string) error {
	args := m.Called(ctx, member, id, oldName, oldGeneration)
	return args.Error(0)
}

func (m *MockPhotographerRepository) Delete(ctx context.Context, id int64, oldName, oldGeneration string) error {
	args := m.Called(ctx, id, oldName, oldGeneration)
	return args.Error(0)
}

type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) List(ctx context.Context) ([]models.Link, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Link), args.Error(1)
}

func (m *MockLinkRepository) Insert(ctx context.Context, link models.Link) (int64, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLinkRepository) Update(ctx context.Context, link models.Link, id int64, name string) error {
	args := m.Called(ctx, link, id, name)
	return args.Error(0)
}

func (m *MockLinkRepository) Delete(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockConfigRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type mocks struct {
	activities    *MockActivityRepository
	exhibitions   *MockExhibitionRepository
	photographers *MockPhotographerRepository
	links         *MockLinkRepository
	configs       *MockConfigRepository
}

func newTestService() (*services.ContentService, *mocks) {
	m := &mocks{
		activities:    new(MockActivityRepository),
		exhibitions:   new(MockExhibitionRepository),
		photographers: new(MockPhotographerRepository),
		links:         new(MockLinkRepository),
		configs:       new(MockConfigRepository),
	}

	repo := &repository.Repository{
		Activities:    m.activities,
		Exhibitions:   m.exhibitions,
		Photographers: m.photographers,
		Links:         m.links,
		Configs:       m.configs,
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	return services.NewContentService(log, repo), m
}

func TestContentService_ListPhotographers(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	rows := []models.Member{
		{ID: 1, Name: "홍길동", Role: models.RoleAssociate, Generation: "59기"},
		{ID: 2, Name: "김철수", Role: models.RoleFull, Generation: "60기"},
		{ID: 3, Name: "강감찬", Role: models.RoleAssociate, Generation: "60기"},
		{ID: 4, Name: "이영희", Role: models.RoleFull, Generation: "60기"},
		{ID: 5, Name: "박문수", Role: models.RoleFull, Generation: "창립"},
	}
	m.photographers.On("List", ctx).Return(rows, nil)

	groups, err := svc.ListPhotographers(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Newest cohort first; a label without digits parses as 0 and lands last.
	assert.Equal(t, "60기", groups[0].Generation)
	assert.Equal(t, "59기", groups[1].Generation)
	assert.Equal(t, "창립", groups[2].Generation)

	// Full members precede associates, names collate in Korean order.
	names := []string{}
	for _, member := range groups[0].Members {
		names = append(names, member.Name)
	}
	assert.Equal(t, []string{"김철수", "이영희", "강감찬"}, names)

	// Ordering is deterministic across reads with no intervening writes.
	again, err := svc.ListPhotographers(ctx)
	require.NoError(t, err)
	assert.Equal(t, groups, again)
}

func TestContentService_ListActivities_NormalizesCover(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	m.activities.On("List", ctx).Return([]models.Activity{
		{ID: 2, CoverImage: "deleted.jpg", Images: []string{"a.jpg", "b.jpg"}},
		{ID: 1, CoverImage: "b.jpg", Images: []string{"a.jpg", "b.jpg"}},
	}, nil)

	activities, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", activities[0].CoverImage)
	assert.Equal(t, "b.jpg", activities[1].CoverImage)
}

func TestContentService_MutateLink(t *testing.T) {
	ctx := context.Background()

	t.Run("add defaults category and returns canonical list", func(t *testing.T) {
		svc, m := newTestService()

		m.links.On("Insert", ctx, models.Link{
			Name:     "Instagram",
			URL:      "https://instagram.com/x",
			Category: models.CategoryPromotion,
		}).Return(int64(7), nil).Once()
		m.links.On("List", ctx).Return([]models.Link{
			{ID: 3, Name: "문의", URL: "https://forms.example.com", Category: models.CategoryInquiry},
			{ID: 7, Name: "Instagram", URL: "https://instagram.com/x", Category: models.CategoryPromotion},
		}, nil).Once()

		links, err := svc.MutateLink(ctx, dto.LinkMutationRequest{
			Action: "add",
			Link:   dto.LinkPayload{Name: "Instagram", URL: "https://instagram.com/x"},
		})
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, int64(7), links[1].ID, "new entries sort after pre-existing ones by id")
		m.links.AssertExpectations(t)
	})

	t.Run("add without name fails validation", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.MutateLink(ctx, dto.LinkMutationRequest{
			Action: "add",
			Link:   dto.LinkPayload{URL: "https://instagram.com/x"},
		})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})

	t.Run("delete without id falls back to name", func(t *testing.T) {
		svc, m := newTestService()

		m.links.On("Delete", ctx, int64(0), "Instagram").Return(nil).Once()
		m.links.On("List", ctx).Return([]models.Link{}, nil).Once()

		_, err := svc.MutateLink(ctx, dto.LinkMutationRequest{
			Action: "delete",
			Link:   dto.LinkPayload{Name: "Instagram"},
		})
		require.NoError(t, err)
		m.links.AssertExpectations(t)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.MutateLink(ctx, dto.LinkMutationRequest{Action: "upsert"})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.MutateLink(ctx, dto.LinkMutationRequest{
			Action: "add",
			Link:   dto.LinkPayload{Name: "x", URL: "https://x", Category: "secret"},
		})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})
}

func TestContentService_MutatePhotographer(t *testing.T) {
	ctx := context.Background()

	t.Run("edit falls back to old name and generation", func(t *testing.T) {
		svc, m := newTestService()

		expected := models.Member{
			Name:       "김철수",
			Role:       models.RoleFull,
			Generation: "60기",
			Works:      []string{},
		}
		m.photographers.On("Update", ctx, expected, int64(0), "김철수", "60기").Return(nil).Once()
		m.photographers.On("List", ctx).Return([]models.Member{}, nil).Once()

		_, err := svc.MutatePhotographer(ctx, dto.PhotographerMutationRequest{
			Action:        "edit",
			Photographer:  dto.PhotographerPayload{Name: "김철수", Type: models.RoleFull, Generation: "60기"},
			OldName:       "김철수",
			OldGeneration: "60기",
		})
		require.NoError(t, err)
		m.photographers.AssertExpectations(t)
	})

	t.Run("works are capped at three", func(t *testing.T) {
		svc, m := newTestService()

		m.photographers.On("Insert", ctx, mock.MatchedBy(func(member models.Member) bool {
			return len(member.Works) == 3
		})).Return(int64(1), nil).Once()
		m.photographers.On("List", ctx).Return([]models.Member{}, nil).Once()

		_, err := svc.MutatePhotographer(ctx, dto.PhotographerMutationRequest{
			Action: "add",
			Photographer: dto.PhotographerPayload{
				Name:       "김철수",
				Generation: "60기",
				Works:      []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg"},
			},
		})
		require.NoError(t, err)
		m.photographers.AssertExpectations(t)
	})

	t.Run("delete needs an id or the fallback pair", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.MutatePhotographer(ctx, dto.PhotographerMutationRequest{Action: "delete"})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})
}

func TestContentService_UpdateActivityTitle_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	m.activities.On("UpdateTitle", ctx, int64(99), "새 제목").Return(storage.ErrNotFound).Once()

	_, err := svc.UpdateActivityTitle(ctx, 99, "새 제목")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContentService_DeleteActivity_AbsentIDIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	remaining := []models.Activity{{ID: 1, Images: []string{"a.jpg"}, CoverImage: "a.jpg"}}
	m.activities.On("Delete", ctx, int64(42)).Return(nil).Once()
	m.activities.On("List", ctx).Return(remaining, nil).Once()

	list, err := svc.DeleteActivity(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, remaining, list, "deleting an absent id leaves the list unchanged")
}

func TestContentService_GetConfig_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	m.configs.On("Get", ctx, "hero").Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GetConfig(ctx, "hero")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
