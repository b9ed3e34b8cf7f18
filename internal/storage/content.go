package storage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var ErrInvalidName = errors.New("invalid content file name")

// ContentStore guarda archivos subidos bajo un directorio raíz, byte a byte.
type ContentStore struct {
	fs   afero.Fs
	root string
}

func NewContentStore(fs afero.Fs, root string) (*ContentStore, error) {
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create content root %s: %w", root, err)
	}
	return &ContentStore{fs: fs, root: root}, nil
}

// Save crea el archivo name; falla si ya existe. Un archivo a medio escribir se elimina.
func (s *ContentStore) Save(name string, r io.Reader) (int64, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return 0, ErrInvalidName
	}

	path := filepath.Join(s.root, name)
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = s.fs.Remove(path)
		return written, err
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(path)
		return written, err
	}
	return written, nil
}

// HTTPFileSystem expone la raíz para servirla como archivos estáticos, sin listar directorios.
func (s *ContentStore) HTTPFileSystem() http.FileSystem {
	return filesOnly{afero.NewHttpFs(s.fs).Dir(s.root)}
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
