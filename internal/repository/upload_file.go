package repository

import (
	"context"
	"errors"
	"sync"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

// SyllabusFileRepository holds metadata for uploaded syllabus and notes
// PDFs. An unreadable metadata file is treated as empty.
type SyllabusFileRepository struct {
	file jsonFile
	mu   sync.Mutex
}

func NewSyllabusFileRepository(path string, logger *zap.Logger) *SyllabusFileRepository {
	return &SyllabusFileRepository{file: jsonFile{path: path, logger: logger}}
}

func (r *SyllabusFileRepository) List(ctx context.Context) ([]models.SyllabusFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Upsert stores entry, replacing any earlier entry with the same file name.
func (r *SyllabusFileRepository) Upsert(ctx context.Context, entry models.SyllabusFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	list = removeSyllabus(list, entry.Filename)
	list = append(list, entry)
	return r.file.write(list)
}

func (r *SyllabusFileRepository) Delete(ctx context.Context, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	return r.file.write(removeSyllabus(list, filename))
}

func (r *SyllabusFileRepository) load() ([]models.SyllabusFile, error) {
	list := []models.SyllabusFile{}
	if _, err := r.file.read(&list); err != nil {
		if errors.Is(err, ErrCorrupt) {
			return []models.SyllabusFile{}, nil
		}
		return nil, err
	}
	return list, nil
}

func removeSyllabus(list []models.SyllabusFile, filename string) []models.SyllabusFile {
	out := list[:0]
	for _, item := range list {
		if item.Filename != filename {
			out = append(out, item)
		}
	}
	return out
}

type GalleryFileRepository struct {
	file jsonFile
	mu   sync.Mutex
}

func NewGalleryFileRepository(path string, logger *zap.Logger) *GalleryFileRepository {
	return &GalleryFileRepository{file: jsonFile{path: path, logger: logger}}
}

func (r *GalleryFileRepository) List(ctx context.Context) ([]models.GalleryImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *GalleryFileRepository) Add(ctx context.Context, img models.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	return r.file.write(append(list, img))
}

func (r *GalleryFileRepository) Delete(ctx context.Context, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	out := list[:0]
	for _, img := range list {
		if img.Filename != filename {
			out = append(out, img)
		}
	}
	return r.file.write(out)
}

func (r *GalleryFileRepository) load() ([]models.GalleryImage, error) {
	list := []models.GalleryImage{}
	if _, err := r.file.read(&list); err != nil {
		if errors.Is(err, ErrCorrupt) {
			return []models.GalleryImage{}, nil
		}
		return nil, err
	}
	return list, nil
}
