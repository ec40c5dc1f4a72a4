package filestore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hrclaims_backend/internals/helpers/errs"
)

// Store keeps uploaded attachment bytes in a local directory. Document rows
// reference files by the path returned from Save.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.FileStore(err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// StoredFile describes one persisted upload.
type StoredFile struct {
	OriginalName string
	Path         string
	Size         int64
}

// Save writes one upload to disk under a collision-avoided name
// (<unix-nano>-<random><ext>). The original filename is untrusted and only
// contributes its extension.
func (s *Store) Save(fh *multipart.FileHeader) (StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, errs.FileStore(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if len(ext) > 10 {
		ext = ""
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, errs.FileStore(err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(path)
		return StoredFile{}, errs.FileStore(err)
	}

	return StoredFile{OriginalName: fh.Filename, Path: path, Size: size}, nil
}

// SaveAll persists every upload or none: a failure part-way removes the files
// already written for this request before returning.
func (s *Store) SaveAll(fhs []*multipart.FileHeader) ([]StoredFile, error) {
	stored := make([]StoredFile, 0, len(fhs))
	for _, fh := range fhs {
		f, err := s.Save(fh)
		if err != nil {
			s.RemoveAll(stored)
			return nil, err
		}
		stored = append(stored, f)
	}
	return stored, nil
}

func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return errs.FileStore(err)
	}
	return nil
}

// RemoveAll is best-effort cleanup after a failed submission. Leftovers are
// logged, not surfaced.
func (s *Store) RemoveAll(files []StoredFile) {
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			log.WithField("path", f.Path).Warnf("failed to clean up upload: %v", err)
		}
	}
}
