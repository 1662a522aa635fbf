package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadImageRejectsNonImages(t *testing.T) {
	svc := NewImageService(nil, "bucket", quietLogger())

	_, err := svc.UploadImage(context.Background(), 1, strings.NewReader("data"), "doc.pdf", "application/pdf", "")
	require.ErrorIs(t, err, ErrNotAnImage)

	_, err = svc.UploadImage(context.Background(), 1, strings.NewReader("data"), "x.png", "", "")
	require.ErrorIs(t, err, ErrNotAnImage)
}

func TestUploadImageRequiresConfiguredStorage(t *testing.T) {
	svc := NewImageService(nil, "", quietLogger())

	_, err := svc.UploadImage(context.Background(), 1, strings.NewReader("data"), "x.png", "image/png", "avatars")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotAnImage)
}
