// Package cloudinary implements ObjectStorage on Cloudinary.
package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Storage uploads images to a Cloudinary folder per bucket.
type Storage struct {
	cld *cloudinary.Cloudinary
}

func NewStorage(cloudName, apiKey, apiSecret string) (*Storage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary: cloud name, api key and api secret are required")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &Storage{cld: cld}, nil
}

// Upload stores body under bucket/name and returns the secure delivery URL.
// The content type is detected by Cloudinary.
func (s *Storage) Upload(ctx context.Context, bucket, name, _ string, body io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, body, uploadParams(bucket, name))
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", errors.New("cloudinary upload: " + resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func uploadParams(bucket, name string) uploader.UploadParams {
	return uploader.UploadParams{
		Folder:         bucket,
		PublicID:       strings.TrimSuffix(name, path.Ext(name)),
		Overwrite:      api.Bool(false),
		UniqueFilename: api.Bool(false),
		ResourceType:   "image",
	}
}
