package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

func TestDefaultFeed(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	ann, err := f.List(ctx, domain.ContentAnnouncements)
	require.NoError(t, err)
	require.Len(t, ann, 3)
	assert.Equal(t, "high", ann[0].Urgency)

	sch, err := f.List(ctx, domain.ContentScholarships)
	require.NoError(t, err)
	require.Len(t, sch, 4)
	assert.Equal(t, "$10,000", sch[0].Amount)
	assert.Equal(t, "Engineering", sch[0].Department)

	ev, err := f.List(ctx, domain.ContentEvents)
	require.NoError(t, err)
	assert.Equal(t, "University Track", ev[0].Location)
}

func TestListReturnsCopy(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	items, _ := f.List(context.Background(), domain.ContentEvents)
	items[0].Title = "changed"

	again, _ := f.List(context.Background(), domain.ContentEvents)
	assert.NotEqual(t, "changed", again[0].Title)
}

func TestUnknownKind(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	_, err = f.List(context.Background(), "podcasts")
	assert.Error(t, err)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	_, err := Parse([]byte("events:\n  - title: no id\n"))
	assert.ErrorContains(t, err, "missing id")

	_, err = Parse([]byte("events:\n  - id: \"1\"\n  - id: \"1\"\n"))
	assert.ErrorContains(t, err, "duplicate id")

	_, err = Parse([]byte("events: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scholarships:\n  - id: s1\n    title: Robotics Grant\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	sch, err := f.List(context.Background(), domain.ContentScholarships)
	require.NoError(t, err)
	assert.Equal(t, "Robotics Grant", sch[0].Title)

	ann, err := f.List(context.Background(), domain.ContentAnnouncements)
	require.NoError(t, err)
	assert.Empty(t, ann)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
