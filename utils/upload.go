package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Upload categories map to subdirectories under the upload root.
const (
	CategoryKYC       = "kyc"
	CategoryCheques   = "cheques"
	CategoryDocuments = "documents"
)

var uploadCategories = []string{CategoryKYC, CategoryCheques, CategoryDocuments}

func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// EnsureUploadDirs creates the upload root and its category subdirectories.
func EnsureUploadDirs() error {
	for _, category := range uploadCategories {
		if err := os.MkdirAll(filepath.Join(UploadDir(), category), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// StoredFilename returns a unique on-disk name keeping the original extension.
func StoredFilename(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
