package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// LocalStore grava os arquivos num diretório do disco, servido estaticamente pelo router
type LocalStore struct {
	dir string
}

// NewLocalStore garante a existência do diretório
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de uploads: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir diretório raiz
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	name := GenerateName(originalName, time.Now())
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("falha ao criar arquivo: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("falha ao gravar arquivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("falha ao fechar arquivo: %w", err)
	}
	return name, nil
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("falha ao remover arquivo: %w", err)
	}
	return nil
}
