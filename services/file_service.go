package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMover relocates a staged upload into permanent storage. Callers treat
// failures as recoverable: the primary record is kept with the staged
// reference and a background job can retry the move later.
type FileMover interface {
	MoveToProduction(stagedPath string, ownerID uint) (string, error)
}

type localFileMover struct {
	baseDir string
}

func NewLocalFileMover(baseDir string) FileMover {
	return &localFileMover{baseDir: baseDir}
}

func (m *localFileMover) MoveToProduction(stagedPath string, ownerID uint) (string, error) {
	if stagedPath == "" {
		return "", fmt.Errorf("empty staged path")
	}

	destDir := filepath.Join(m.baseDir, "production", fmt.Sprintf("%d", ownerID))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, filepath.Base(stagedPath))
	if err := os.Rename(stagedPath, dest); err != nil {
		return "", err
	}

	return dest, nil
}
