package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Upload — метаданные загруженного файла.
type Upload struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

var allowedUploadExt = map[string]bool{".csv": true, ".xlsx": true, ".xls": true}

// CheckUploadName принимает только таблицы: .csv, .xlsx, .xls.
func CheckUploadName(name string) error {
	base := filepath.Base(name)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return Invalid("file name is required")
	}
	if !allowedUploadExt[strings.ToLower(filepath.Ext(base))] {
		return Invalid("file %q: only .csv, .xlsx and .xls are accepted", base)
	}
	return nil
}
