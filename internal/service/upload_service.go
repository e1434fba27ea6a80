package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"saicollege/internal/models"
	"saicollege/internal/repository"

	"go.uber.org/zap"
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// gallery categories inferred from file names, checked in order
var galleryCategoryWords = []struct {
	category string
	words    []string
}{
	{"campus", []string{"campus", "gate", "college", "building", "class", "hostel", "canteen", "cafe", "drone", "infra", "view"}},
	{"labs", []string{"lab", "computer", "science", "workshop", "physics", "chem"}},
	{"sports", []string{"sport", "cricket", "football", "game", "play", "badminton"}},
	{"library", []string{"lib", "book", "read"}},
	{"events", []string{"event", "function", "fest", "cultural", "dance", "music", "seminar", "award"}},
}

type SyllabusUpload struct {
	Filename string
	Course   string
	Semester string
	Category models.SyllabusCategory
}

type UploadService struct {
	syllabusRepo *repository.SyllabusFileRepository
	galleryRepo  *repository.GalleryFileRepository
	pdfDir       string
	galleryDir   string
	now          func() time.Time
	logger       *zap.Logger
}

func NewUploadService(
	syllabusRepo *repository.SyllabusFileRepository,
	galleryRepo *repository.GalleryFileRepository,
	pdfDir, galleryDir string,
	logger *zap.Logger,
) *UploadService {
	for _, dir := range []string{pdfDir, galleryDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warn("Failed to create upload directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	return &UploadService{
		syllabusRepo: syllabusRepo,
		galleryRepo:  galleryRepo,
		pdfDir:       pdfDir,
		galleryDir:   galleryDir,
		now:          time.Now,
		logger:       logger,
	}
}

// UploadSyllabus stores a syllabus or notes PDF and records its metadata.
// Uploading a file with an existing name replaces it.
func (s *UploadService) UploadSyllabus(ctx context.Context, file io.Reader, up SyllabusUpload) (*models.SyllabusFile, error) {
	name := secureFilename(up.Filename)
	if name == "" {
		return nil, ErrInvalidFilename
	}
	if !hasExt(name, ".pdf") {
		return nil, ErrInvalidFile
	}

	category := up.Category
	if category == "" {
		category = models.CategorySyllabus
	}
	if category == models.CategoryNotes && !strings.Contains(strings.ToLower(name), "note") {
		name = "Note_" + name
	}

	if err := saveFile(filepath.Join(s.pdfDir, name), file); err != nil {
		return nil, err
	}

	entry := models.SyllabusFile{
		Filename:   name,
		Course:     defaultString(up.Course, "General"),
		Semester:   defaultString(up.Semester, "N/A"),
		Category:   category,
		UploadedAt: s.now().Format("2006-01-02"),
	}
	if err := s.syllabusRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save syllabus metadata: %w", err)
	}

	s.logger.Info("Syllabus uploaded", zap.String("filename", name), zap.String("category", string(category)))
	return &entry, nil
}

// ListSyllabus returns metadata only for files still present on disk.
func (s *UploadService) ListSyllabus(ctx context.Context) ([]models.SyllabusFile, error) {
	entries, err := s.syllabusRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	present, err := dirFiles(s.pdfDir)
	if err != nil {
		return nil, err
	}

	out := []models.SyllabusFile{}
	for _, e := range entries {
		if present[e.Filename] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *UploadService) DeleteSyllabus(ctx context.Context, filename string) error {
	if unsafeName(filename) {
		return ErrInvalidFilename
	}

	err := os.Remove(filepath.Join(s.pdfDir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return s.syllabusRepo.Delete(ctx, filename)
}

// UploadGalleryImage stores an image under a timestamped name. Unknown
// categories fall back to campus.
func (s *UploadService) UploadGalleryImage(ctx context.Context, file io.Reader, filename, category string) (*models.GalleryImage, error) {
	if secureFilename(filename) == "" {
		return nil, ErrInvalidFilename
	}
	if !hasExt(filename, imageExts...) {
		return nil, ErrInvalidFile
	}

	now := s.now()
	name := secureFilename(fmt.Sprintf("img_%d_%s", now.Unix(), filename))

	if err := saveFile(filepath.Join(s.galleryDir, name), file); err != nil {
		return nil, err
	}

	img := models.GalleryImage{
		Filename:  name,
		Category:  normalizeGalleryCategory(category),
		Timestamp: now.Format("2006-01-02 15:04"),
	}
	if err := s.galleryRepo.Add(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to save gallery metadata: %w", err)
	}

	s.logger.Info("Gallery image uploaded", zap.String("filename", name), zap.String("category", img.Category))
	return &img, nil
}

func (s *UploadService) DeleteGalleryImage(ctx context.Context, filename string) error {
	if unsafeName(filename) {
		return ErrInvalidFilename
	}

	err := os.Remove(filepath.Join(s.galleryDir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return s.galleryRepo.Delete(ctx, filename)
}

// GalleryImages lists the images in the gallery directory, newest first,
// each with a category guessed from its file name.
func (s *UploadService) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	files, err := os.ReadDir(s.galleryDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.GalleryImage{}, nil
	}
	if err != nil {
		return nil, err
	}

	images := []models.GalleryImage{}
	for _, f := range files {
		if f.IsDir() || !hasExt(f.Name(), imageExts...) {
			continue
		}
		images = append(images, models.GalleryImage{
			Filename: f.Name(),
			Category: inferGalleryCategory(f.Name()),
		})
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].Filename > images[j].Filename
	})
	return images, nil
}

func normalizeGalleryCategory(raw string) string {
	raw = strings.ToLower(raw)
	switch {
	case strings.Contains(raw, "campus"):
		return "campus"
	case strings.Contains(raw, "event"):
		return "events"
	case strings.Contains(raw, "lab"):
		return "labs"
	case strings.Contains(raw, "sport"):
		return "sports"
	}
	return "campus"
}

func inferGalleryCategory(filename string) string {
	lower := strings.ToLower(filename)
	for _, group := range galleryCategoryWords {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				return group.category
			}
		}
	}

	// img_<unix>_<category>_... names carry the category in the third part
	if parts := strings.Split(filename, "_"); len(parts) >= 3 {
		return parts[2]
	}
	return "events"
}

func saveFile(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return fmt.Errorf("failed to save file: %w", err)
	}
	return dst.Close()
}

func dirFiles(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			out[e.Name()] = true
		}
	}
	return out, nil
}

func defaultString(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
