package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/lib/logger/sl"
	"photoclub_backend/internal/repository"
	"photoclub_backend/internal/storage"
	"photoclub_backend/internal/transport/http/dto"
)

// A member carries at most this many representative-work images.
const maxWorks = 3

// ContentService is the consistency layer between the stored rows and
// the shapes the site renders. Every mutation returns the complete,
// freshly reordered collection; clients adopt it wholesale instead of
// patching their local copy, because grouping and ordering only exist
// server-side.
type ContentService struct {
	log           *slog.Logger
	activities    repository.ActivityRepository
	exhibitions   repository.ExhibitionRepository
	photographers repository.PhotographerRepository
	links         repository.LinkRepository
	configs       repository.ConfigRepository
}

func NewContentService(log *slog.Logger, repo *repository.Repository) *ContentService {
	return &ContentService{
		log:           log,
		activities:    repo.Activities,
		exhibitions:   repo.Exhibitions,
		photographers: repo.Photographers,
		links:         repo.Links,
		configs:       repo.Configs,
	}
}

func (s *ContentService) ListActivities(ctx context.Context) ([]models.Activity, error) {
	const op = "content_service.ListActivities"

	activities, err := s.activities.List(ctx)
	if err != nil {
		s.log.Error("failed to list activities", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range activities {
		activities[i].Normalize()
	}

	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, nil
}

func (s *ContentService) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	const op = "content_service.ListExhibitions"

	exhibitions, err := s.exhibitions.List(ctx)
	if err != nil {
		s.log.Error("failed to list exhibitions", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if exhibitions == nil {
		exhibitions = []models.Exhibition{}
	}
	return exhibitions, nil
}

func (s *ContentService) ListPhotographers(ctx context.Context) ([]models.PhotographerGroup, error) {
	const op = "content_service.ListPhotographers"

	members, err := s.photographers.List(ctx)
	if err != nil {
		s.log.Error("failed to list photographers", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return groupMembers(members), nil
}

func (s *ContentService) ListLinks(ctx context.Context) ([]models.Link, error) {
	const op = "content_service.ListLinks"

	links, err := s.links.List(ctx)
	if err != nil {
		s.log.Error("failed to list links", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range links {
		links[i].Normalize()
	}

	if links == nil {
		links = []models.Link{}
	}
	return links, nil
}

func (s *ContentService) GetConfig(ctx context.Context, key string) (json.RawMessage, error) {
	const op = "content_service.GetConfig"

	value, err := s.configs.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (s *ContentService) UpsertConfig(ctx context.Context, key string, value json.RawMessage) error {
	const op = "content_service.UpsertConfig"

	if err := s.configs.Upsert(ctx, key, value); err != nil {
		s.log.Error("failed to upsert config", slog.String("op", op), slog.String("key", key), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MutatePhotographer applies an add/edit/delete and returns the
// regrouped, resorted roster.
func (s *ContentService) MutatePhotographer(ctx context.Context, req dto.PhotographerMutationRequest) ([]models.PhotographerGroup, error) {
	const op = "content_service.MutatePhotographer"

	log := s.log.With(
		slog.String("op", op),
		slog.String("action", req.Action),
	)

	member := memberFromPayload(req.Photographer)

	switch req.Action {
	case "add":
		if member.Name == "" || member.Generation == "" {
			return nil, fmt.Errorf("%s: name and generation are required: %w", op, storage.ErrInvalidInput)
		}
		id, err := s.photographers.Insert(ctx, member)
		if err != nil {
			log.Error("failed to add member", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("member added", slog.Int64("id", id), slog.String("generation", member.Generation))

	case "edit":
		id := req.ID
		if id == 0 {
			id = req.Photographer.ID
		}
		if id == 0 && (req.OldName == "" || req.OldGeneration == "") {
			return nil, fmt.Errorf("%s: id or oldName/oldGeneration is required: %w", op, storage.ErrInvalidInput)
		}
		if err := s.photographers.Update(ctx, member, id, req.OldName, req.OldGeneration); err != nil {
			log.Error("failed to edit member", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("member edited", slog.Int64("id", id))

	case "delete":
		if req.ID == 0 && (req.OldName == "" || req.OldGeneration == "") {
			return nil, fmt.Errorf("%s: id or oldName/oldGeneration is required: %w", op, storage.ErrInvalidInput)
		}
		if err := s.photographers.Delete(ctx, req.ID, req.OldName, req.OldGeneration); err != nil {
			log.Error("failed to delete member", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("member deleted", slog.Int64("id", req.ID))

	default:
		return nil, fmt.Errorf("%s: action %q: %w", op, req.Action, storage.ErrInvalidInput)
	}

	return s.ListPhotographers(ctx)
}

// MutateLink applies an add/edit/delete and returns the canonical list.
// Edits and deletes match on id OR name; two links sharing a name are
// both affected by a name-addressed mutation.
func (s *ContentService) MutateLink(ctx context.Context, req dto.LinkMutationRequest) ([]models.Link, error) {
	const op = "content_service.MutateLink"

	log := s.log.With(
		slog.String("op", op),
		slog.String("action", req.Action),
	)

	link := models.Link{
		Name:     req.Link.Name,
		URL:      req.Link.URL,
		Category: req.Link.Category,
	}
	link.Normalize()
	if !models.ValidCategory(link.Category) {
		return nil, fmt.Errorf("%s: category %q: %w", op, link.Category, storage.ErrInvalidInput)
	}

	id := req.ID
	if id == 0 {
		id = req.Link.ID
	}
	name := req.Name
	if name == "" && id == 0 {
		name = req.Link.Name
	}

	switch req.Action {
	case "add":
		if link.Name == "" || link.URL == "" {
			return nil, fmt.Errorf("%s: name and url are required: %w", op, storage.ErrInvalidInput)
		}
		newID, err := s.links.Insert(ctx, link)
		if err != nil {
			log.Error("failed to add link", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("link added", slog.Int64("id", newID), slog.String("name", link.Name))

	case "edit":
		if id == 0 && name == "" {
			return nil, fmt.Errorf("%s: id or name is required: %w", op, storage.ErrInvalidInput)
		}
		if err := s.links.Update(ctx, link, id, name); err != nil {
			log.Error("failed to edit link", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("link edited", slog.Int64("id", id))

	case "delete":
		if id == 0 && name == "" {
			return nil, fmt.Errorf("%s: id or name is required: %w", op, storage.ErrInvalidInput)
		}
		if err := s.links.Delete(ctx, id, name); err != nil {
			log.Error("failed to delete link", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("link deleted", slog.Int64("id", id), slog.String("name", name))

	default:
		return nil, fmt.Errorf("%s: action %q: %w", op, req.Action, storage.ErrInvalidInput)
	}

	return s.ListLinks(ctx)
}

// UpdateActivityTitle renames an activity and returns the canonical
// archive list. storage.ErrNotFound surfaces when the id is unknown.
func (s *ContentService) UpdateActivityTitle(ctx context.Context, id int64, title string) ([]models.Activity, error) {
	const op = "content_service.UpdateActivityTitle"

	if err := s.activities.UpdateTitle(ctx, id, title); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("activity renamed", slog.String("op", op), slog.Int64("id", id))

	return s.ListActivities(ctx)
}

// DeleteActivity removes the record and returns the remaining list.
// Deleting an absent id succeeds with the list unchanged.
func (s *ContentService) DeleteActivity(ctx context.Context, id int64) ([]models.Activity, error) {
	const op = "content_service.DeleteActivity"

	if err := s.activities.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete activity", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.ListActivities(ctx)
}

func (s *ContentService) DeleteExhibition(ctx context.Context, id int64) ([]models.Exhibition, error) {
	const op = "content_service.DeleteExhibition"

	if err := s.exhibitions.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete exhibition", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.ListExhibitions(ctx)
}

func memberFromPayload(p dto.PhotographerPayload) models.Member {
	works := p.Works
	if len(works) > maxWorks {
		works = works[:maxWorks]
	}
	if works == nil {
		works = []string{}
	}
	return models.Member{
		Name:       p.Name,
		Role:       p.Type,
		Image:      p.MainPhoto,
		Instagram:  p.Instagram,
		Generation: p.Generation,
		Works:      works,
	}
}

// groupMembers buckets rows by generation and applies the display order:
// groups newest cohort first by the numeric part of the label, members
// by role tier and then by name under Korean collation. The order is
// recomputed on every call and never persisted.
func groupMembers(members []models.Member) []models.PhotographerGroup {
	groups := []models.PhotographerGroup{}
	index := map[string]int{}

	for _, m := range members {
		if m.Works == nil {
			m.Works = []string{}
		}
		i, ok := index[m.Generation]
		if !ok {
			i = len(groups)
			index[m.Generation] = i
			groups = append(groups, models.PhotographerGroup{Generation: m.Generation})
		}
		groups[i].Members = append(groups[i].Members, m)
	}

	c := collate.New(language.Korean)
	for i := range groups {
		ms := groups[i].Members
		sort.SliceStable(ms, func(a, b int) bool {
			fullA := ms[a].Role == models.RoleFull
			fullB := ms[b].Role == models.RoleFull
			if fullA != fullB {
				return fullA
			}
			return c.CompareString(ms[a].Name, ms[b].Name) < 0
		})
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return models.GenerationNumber(groups[a].Generation) > models.GenerationNumber(groups[b].Generation)
	})

	return groups
}
