package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type IUploader interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (string, error)
	SaveProductFile(file multipart.File, header *multipart.FileHeader) (string, error)
}

// Uploader 將上傳檔案落地到本機目錄
// 檔名一律重新命名, 不信任客戶端給的檔名
type Uploader struct {
	baseDir string
}

func NewUploader(baseDir string) *Uploader {
	return &Uploader{baseDir: baseDir}
}

var _ IUploader = (*Uploader)(nil)

// SaveImage 儲存商品圖片, 以檔案內容sniff MIME, 不看副檔名
func (u *Uploader) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > constants.MaxImageSizeBytes {
		return "", serr.NewField(serr.ValidationCode, "image", "Image must not exceed 5MB")
	}

	mimeType, err := sniffContentType(file)
	if err != nil {
		return "", serr.Wrap(serr.InternalErrorCode, "failed to read uploaded image", err)
	}
	if !imageMimeTypes[mimeType] {
		return "", serr.NewField(serr.ValidationCode, "image", "Image must be a JPEG, PNG, GIF, or WebP file")
	}

	return u.save(file, header, "img_", "images")
}

// SaveProductFile 儲存商品數位檔案, 類型不限
func (u *Uploader) SaveProductFile(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > constants.MaxFileSizeBytes {
		return "", serr.NewField(serr.ValidationCode, "file", "File must not exceed 50MB")
	}

	return u.save(file, header, "prod_", "files")
}

func (u *Uploader) save(file multipart.File, header *multipart.FileHeader, prefix, subDir string) (string, error) {
	dir := filepath.Join(u.baseDir, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", serr.Wrap(serr.InternalErrorCode, "failed to create upload directory", err)
	}

	filename := fmt.Sprintf("%s%d_%s", prefix, time.Now().Unix(), sanitizeFilename(header.Filename))
	dstPath := filepath.Join(dir, filename)

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", serr.Wrap(serr.InternalErrorCode, "failed to rewind uploaded file", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", serr.Wrap(serr.InternalErrorCode, "failed to create destination file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", serr.Wrap(serr.InternalErrorCode, "failed to write uploaded file", err)
	}

	// 回傳相對路徑, db不存絕對路徑
	return filepath.ToSlash(filepath.Join(subDir, filename)), nil
}

// 以前512 bytes判斷MIME, 讀完後把讀取位置倒回
func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	mimeType := http.DetectContentType(buf[:n])
	// DetectContentType可能帶上charset參數
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType, nil
}

// 去掉路徑成分, 非白名單字元以底線取代
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}
