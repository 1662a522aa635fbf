package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mvargas/portfolio-cms-api/pkg/helpers"
)

// ImageService uploads portfolio images to object storage and hands back the
// public URL; entities only ever store the URL string.
type ImageService struct {
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewImageService(gcs *storage.Client, bucket string, logger *logrus.Logger) *ImageService {
	return &ImageService{GCS: gcs, GCSBucket: bucket, Logger: logger}
}

// UploadImage stores the image under a per-user folder with a random object
// name and returns its public URL.
func (s *ImageService) UploadImage(ctx context.Context, userID int64, r io.Reader, filename, contentType, folder string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	if folder == "" {
		folder = "uploads"
	}

	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join(folder, strconv.FormatInt(userID, 10), id+ext))

	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		s.Logger.WithError(err).WithField("object", objectPath).Error("image upload failed")
		return "", err
	}
	return url, nil
}
