// internals/helpers/oss/thumbnail.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	thumbW = 400
	thumbH = 300
)

// UploadPhotoWithThumbnail uploads a full-size webp plus a 400x300 cover
// thumbnail next to it, returning both public URLs. Used by property photos
// and highlight images.
func (s *OSSService) UploadPhotoWithThumbnail(ctx context.Context, fh *multipart.FileHeader, keyPrefix string) (fullURL, thumbURL string, err error) {
	if fh == nil {
		return "", "", fmt.Errorf("nil file header")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", "", err
	}

	img, err := decodeImage(all, fh.Filename)
	if err != nil {
		return "", "", err
	}

	opt := defaultWebPOptionsFromEnv()
	full, err := encodeToWebP(downscaleIfNeeded(img, opt.MaxW, opt.MaxH), opt)
	if err != nil {
		return "", "", err
	}

	// centered crop-to-fill for a uniform card grid in the UI
	thumbImg := imaging.Fill(img, thumbW, thumbH, imaging.Center, imaging.Lanczos)
	thumbBuf := new(bytes.Buffer)
	if err := webp.Encode(thumbBuf, thumbImg, &webp.Options{Quality: 75}); err != nil {
		return "", "", err
	}

	base := slugify(strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename)))
	fullKey := s.buildObjectKey(base + ".webp")
	if keyPrefix != "" {
		fullKey = strings.Trim(keyPrefix, "/") + "/" + fullKey
	}
	thumbKey := strings.TrimSuffix(fullKey, ".webp") + "_thumb.webp"

	if err := s.UploadStream(ctx, fullKey, bytes.NewReader(full), "image/webp", true, true); err != nil {
		return "", "", err
	}
	if err := s.UploadStream(ctx, thumbKey, thumbBuf, "image/webp", true, true); err != nil {
		// keep the pair atomic: drop the full image when the thumb fails
		_ = s.DeleteObject(ctx, fullKey)
		return "", "", err
	}

	return s.PublicURL(fullKey), s.PublicURL(thumbKey), nil
}
