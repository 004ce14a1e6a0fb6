// Package imagehost uploads and removes images on Cloudinary.
package imagehost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadTransformation caps images at 1000x1000 and lets Cloudinary pick
// quality and format per client.
const uploadTransformation = "c_limit,h_1000,w_1000/q_auto/f_auto"

// ErrMissingConfig is returned by NewClient when a credential is empty.
var ErrMissingConfig = errors.New("cloudinary configuration is missing")

// Config holds Cloudinary credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Image is an uploaded image.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Client uploads to a single Cloudinary account.
type Client struct {
	cld *cloudinary.Cloudinary
}

// NewClient creates a Cloudinary client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrMissingConfig
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &Client{cld: cld}, nil
}

// Upload stores file under folder. An empty publicID lets Cloudinary
// generate one.
func (c *Client) Upload(ctx context.Context, file io.Reader, folder, publicID string) (Image, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		PublicID:       publicID,
		ResourceType:   "image",
		Transformation: uploadTransformation,
	})
	if err != nil {
		return Image{}, fmt.Errorf("failed to upload image: %w", err)
	}
	if res.Error.Message != "" {
		return Image{}, fmt.Errorf("failed to upload image: %s", res.Error.Message)
	}
	return Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Destroy removes the image with publicID.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("failed to delete image %s: %s", publicID, res.Error.Message)
	}
	return nil
}

var publicIDPattern = regexp.MustCompile(`/upload/(?:v\d+/)?(.+)\.\w+$`)

// ExtractPublicID returns the public ID embedded in a Cloudinary delivery
// URL, e.g. "products/abc" for ".../upload/v123/products/abc.jpg".
func ExtractPublicID(url string) (string, bool) {
	m := publicIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsCloudinaryURL reports whether url is served by Cloudinary.
func IsCloudinaryURL(url string) bool {
	return strings.Contains(url, "res.cloudinary.com")
}
