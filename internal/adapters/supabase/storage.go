package supabase

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Upload stores an object and returns its public URL.
// POST /storage/v1/object/{bucket}/{name}
func (c *Client) Upload(ctx context.Context, bucket, name, contentType string, body io.Reader) (string, error) {
	objectPath := "/" + url.PathEscape(bucket) + "/" + url.PathEscape(name)

	headers := map[string]string{
		"Content-Type": contentType,
		"x-upsert":     "false",
	}
	if err := c.do(ctx, http.MethodPost, "/storage/v1/object"+objectPath, nil, body, headers, nil); err != nil {
		return "", err
	}
	return c.baseURL + "/storage/v1/object/public" + objectPath, nil
}
