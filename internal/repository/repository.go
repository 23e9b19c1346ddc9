package repository

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db            *pgxpool.Pool
	Activities    ActivityRepository
	Exhibitions   ExhibitionRepository
	Photographers PhotographerRepository
	Links         LinkRepository
	Configs       ConfigRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:            db,
		Activities:    NewActivityRepository(db),
		Exhibitions:   NewExhibitionRepository(db),
		Photographers: NewPhotographerRepository(db),
		Links:         NewLinkRepository(db),
		Configs:       NewConfigRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}
