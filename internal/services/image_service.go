package services

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"dashboard/pkg/imagehost"
)

const defaultImageFolder = "products"

var folderPattern = regexp.MustCompile(`^[a-z0-9_-]+(/[a-z0-9_-]+)*$`)

// ImageStore is a remote image host.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (imagehost.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// ImageService passes dashboard uploads through to the image host.
type ImageService struct {
	store ImageStore
}

// NewImageService creates a new ImageService. store may be nil when no
// host is configured; every operation then fails with ErrImageHostUnavailable.
func NewImageService(store ImageStore) *ImageService {
	return &ImageService{store: store}
}

// UploadImage uploads file into folder, "products" when empty.
func (s *ImageService) UploadImage(ctx context.Context, file io.Reader, folder string) (imagehost.Image, error) {
	if s.store == nil {
		return imagehost.Image{}, ErrImageHostUnavailable
	}
	if folder == "" {
		folder = defaultImageFolder
	}
	if !folderPattern.MatchString(folder) {
		return imagehost.Image{}, fmt.Errorf("%w: bad folder %q", ErrInvalidImage, folder)
	}
	return s.store.Upload(ctx, file, folder, "")
}

// DeleteImage removes an image given either its public ID or its
// Cloudinary URL, and returns the public ID it removed.
func (s *ImageService) DeleteImage(ctx context.Context, url, publicID string) (string, error) {
	if s.store == nil {
		return "", ErrImageHostUnavailable
	}
	if publicID == "" {
		if !imagehost.IsCloudinaryURL(url) {
			return "", fmt.Errorf("%w: not a cloudinary url", ErrInvalidImage)
		}
		id, ok := imagehost.ExtractPublicID(url)
		if !ok {
			return "", fmt.Errorf("%w: no public id in url", ErrInvalidImage)
		}
		publicID = id
	}
	if err := s.store.Destroy(ctx, publicID); err != nil {
		return "", err
	}
	return publicID, nil
}
