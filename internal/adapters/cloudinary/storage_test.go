package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadParams(t *testing.T) {
	p := uploadParams("fundraiser-images", "fundraiser-1714000000000-abc-cover.jpeg")

	assert.Equal(t, "fundraiser-images", p.Folder)
	assert.Equal(t, "fundraiser-1714000000000-abc-cover", p.PublicID)
	assert.Equal(t, "image", p.ResourceType)
	require.NotNil(t, p.Overwrite)
	assert.False(t, *p.Overwrite)
}

func TestNewStorageRequiresCredentials(t *testing.T) {
	_, err := NewStorage("", "key", "secret")
	assert.Error(t, err)

	_, err = NewStorage("demo", "key", "")
	assert.Error(t, err)
}
