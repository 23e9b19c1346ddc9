package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"photoclub_backend/internal/domain/models"
	"photoclub_backend/internal/lib/logger/sl"
	"photoclub_backend/internal/repository"
	"photoclub_backend/internal/storage"
	"photoclub_backend/internal/storage/objectstore"
	"photoclub_backend/internal/transport/http/dto"
)

// Storage folders per content kind.
const (
	folderGallery       = "gallery"
	folderExhibitions   = "exhibitions"
	folderPhotographers = "photographers"
	folderBanner        = "banner"
)

// UploadService persists an image batch to object storage and writes the
// record that references it. Uploads within a batch run concurrently;
// the record write is sequenced strictly after every upload succeeded.
// One failed upload aborts the request before anything reaches the
// database. If the record write itself fails, the blobs uploaded for
// this request are deleted best-effort.
type UploadService struct {
	log         *slog.Logger
	store       objectstore.ObjectStorage
	activities  repository.ActivityRepository
	exhibitions repository.ExhibitionRepository
	configs     repository.ConfigRepository
	now         func() time.Time
}

func NewUploadService(log *slog.Logger, store objectstore.ObjectStorage, repo *repository.Repository) *UploadService {
	return &UploadService{
		log:         log,
		store:       store,
		activities:  repo.Activities,
		exhibitions: repo.Exhibitions,
		configs:     repo.Configs,
		now:         time.Now,
	}
}

// UploadActivity stores the batch under gallery/ and inserts the record.
// The cover is the image at the main index of the batch.
func (s *UploadService) UploadActivity(ctx context.Context, input dto.UploadInput) (*models.Activity, error) {
	const op = "upload_service.UploadActivity"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("files", len(input.Files)),
	)

	if len(input.Files) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNoFiles)
	}

	urls, keys, err := s.saveBatch(ctx, folderGallery, input.Files)
	if err != nil {
		log.Error("batch upload failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	activity := models.Activity{
		Title:      input.Title,
		Date:       input.Date,
		CoverImage: models.CoverAt(urls, input.MainIndex),
		Images:     urls,
	}
	if activity.Title == "" {
		activity.Title = "제목 없음"
	}
	if activity.Date == "" {
		activity.Date = s.now().Format("2006-01-02")
	}

	created, err := s.activities.Insert(ctx, activity)
	if err != nil {
		log.Error("record write failed, removing uploaded blobs", sl.Err(err))
		s.cleanup(ctx, keys)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("activity uploaded", slog.Int64("id", created.ID))

	return &created, nil
}

// UploadExhibition creates or updates a show entry. On an edit the
// caller's existing image URLs come first and the new uploads are
// appended; the main index is resolved against the combined sequence.
func (s *UploadService) UploadExhibition(ctx context.Context, input dto.UploadInput) (*models.Exhibition, error) {
	const op = "upload_service.UploadExhibition"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", input.ID),
		slog.Int("files", len(input.Files)),
	)

	images := append([]string{}, input.ExistingImages...)

	var keys []string
	if len(input.Files) > 0 {
		urls, uploaded, err := s.saveBatch(ctx, folderExhibitions, input.Files)
		if err != nil {
			log.Error("batch upload failed", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, urls...)
		keys = uploaded
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNoFiles)
	}

	exhibition := models.Exhibition{
		ID:          input.ID,
		Title:       input.Title,
		Date:        input.Date,
		Location:    input.Location,
		Image:       models.CoverAt(images, input.MainIndex),
		Images:      images,
		Description: "",
	}

	var (
		written models.Exhibition
		err     error
	)
	if input.ID != 0 {
		written, err = s.exhibitions.Update(ctx, exhibition)
	} else {
		written, err = s.exhibitions.Insert(ctx, exhibition)
	}
	if err != nil {
		log.Error("record write failed, removing uploaded blobs", sl.Err(err))
		s.cleanup(ctx, keys)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("exhibition written", slog.Int64("id", written.ID))

	return &written, nil
}

// UploadPhotographerPhoto stores one member photo and returns its public
// URL; the roster record is written separately by the mutation endpoint.
func (s *UploadService) UploadPhotographerPhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	const op = "upload_service.UploadPhotographerPhoto"

	if file == nil {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNoFiles)
	}

	publicURL, _, err := s.saveOne(ctx, folderPhotographers, file)
	if err != nil {
		s.log.Error("photo upload failed", slog.String("op", op), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return publicURL, nil
}

// UploadHero stores the hero background under banner/ and replaces the
// hero config blob with the new URL.
func (s *UploadService) UploadHero(ctx context.Context, file *multipart.FileHeader) (string, error) {
	const op = "upload_service.UploadHero"

	if file == nil {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNoFiles)
	}

	publicURL, key, err := s.saveOne(ctx, folderBanner, file)
	if err != nil {
		s.log.Error("hero upload failed", slog.String("op", op), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	value, err := json.Marshal(models.HeroConfig{BackgroundImage: publicURL})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.configs.Upsert(ctx, models.ConfigKeyHero, value); err != nil {
		s.log.Error("hero config write failed, removing uploaded blob", slog.String("op", op), sl.Err(err))
		s.cleanup(ctx, []string{key})
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("hero image replaced", slog.String("op", op), slog.String("url", publicURL))

	return publicURL, nil
}

// saveBatch uploads all files concurrently and returns their public URLs
// and object keys in batch order. The shared timestamp plus the index
// keeps keys unique even when files in one batch share a name.
func (s *UploadService) saveBatch(ctx context.Context, folder string, files []*multipart.FileHeader) ([]string, []string, error) {
	ts := s.now().UnixMilli()

	urls := make([]string, len(files))
	keys := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		key := objectKey(folder, ts, i, file.Filename)
		keys[i] = key

		g.Go(func() error {
			src, err := file.Open()
			if err != nil {
				return fmt.Errorf("open %q: %w", file.Filename, err)
			}
			defer src.Close()

			if err := s.store.Upload(gctx, key, src, file.Size, file.Header.Get("Content-Type")); err != nil {
				return err
			}
			urls[i] = s.store.PublicURL(key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return urls, keys, nil
}

func (s *UploadService) saveOne(ctx context.Context, folder string, file *multipart.FileHeader) (string, string, error) {
	urls, keys, err := s.saveBatch(ctx, folder, []*multipart.FileHeader{file})
	if err != nil {
		return "", "", err
	}
	return urls[0], keys[0], nil
}

// cleanup removes blobs uploaded by a request whose record write failed.
// Failures here only log: the blobs are orphaned either way and the
// request already failed.
func (s *UploadService) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.Warn("failed to remove orphaned blob", slog.String("key", key), sl.Err(err))
		}
	}
}

// objectKey builds "{folder}/{timestamp}_{index}_{sanitizedName}".
func objectKey(folder string, ts int64, index int, filename string) string {
	return fmt.Sprintf("%s/%d_%d_%s", folder, ts, index, sanitizeFileName(filename))
}

// sanitizeFileName percent-encodes the original name and then replaces
// the escape character itself, so the key never contains storage-path
// escaping ambiguity.
func sanitizeFileName(name string) string {
	return strings.ReplaceAll(url.PathEscape(name), "%", "_")
}
