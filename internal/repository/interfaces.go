package repository

import (
	"context"
	"encoding/json"

	"photoclub_backend/internal/domain/models"
)

type ActivityRepository interface {
	List(ctx context.Context) ([]models.Activity, error)
	Insert(ctx context.Context, activity models.Activity) (models.Activity, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	Delete(ctx context.Context, id int64) error
}

type ExhibitionRepository interface {
	List(ctx context.Context) ([]models.Exhibition, error)
	Insert(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error)
	Update(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error)
	Delete(ctx context.Context, id int64) error
}

// PhotographerRepository mutations address rows by id when the caller
// knows it, falling back to the (oldName, oldGeneration) pair so the UI
// can edit a member it just created optimistically.
type PhotographerRepository interface {
	List(ctx context.Context) ([]models.Member, error)
	Insert(ctx context.Context, member models.Member) (int64, error)
	Update(ctx context.Context, member models.Member, id int64, oldName, oldGeneration string) error
	Delete(ctx context.Context, id int64, oldName, oldGeneration string) error
}

// LinkRepository mutations match on id OR name, inclusive. Two links
// sharing a name are both affected by a name-addressed delete; that is
// the documented fallback contract, not an accident to paper over.
type LinkRepository interface {
	List(ctx context.Context) ([]models.Link, error)
	Insert(ctx context.Context, link models.Link) (int64, error)
	Update(ctx context.Context, link models.Link, id int64, name string) error
	Delete(ctx context.Context, id int64, name string) error
}

type ConfigRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}
