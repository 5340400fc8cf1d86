// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import (
	"context"
	"net/http"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/metrics"
)

// resolveThumbnails rewrites the row's image fields to CDN thumbnail URLs
// of the requested width. Paintings with a forgery also get their fake image
// resolved, as do furniture renders.
func (c *Client) resolveThumbnails(ctx context.Context, row Row, size string) error {
	if err := c.resolveThumbField(ctx, row, "image_url", size); err != nil {
		return err
	}
	if hasFake, _ := row["has_fake"].(string); hasFake == "1" {
		if err := c.resolveThumbField(ctx, row, "fake_image_url", size); err != nil {
			return err
		}
	}
	return c.resolveThumbField(ctx, row, "render_url", size)
}

func (c *Client) resolveThumbField(ctx context.Context, row Row, field, size string) error {
	original, ok := row[field].(string)
	if !ok || original == "" {
		return nil
	}

	resolved, err := c.resolveThumb(ctx, original, size)
	if err != nil {
		metrics.CargoThumbnailLookups.WithLabelValues("error").Inc()
		return &UpstreamError{Op: "thumbnail", Params: original, Err: err}
	}
	metrics.CargoThumbnailLookups.WithLabelValues("success").Inc()
	row[field] = resolved
	return nil
}

// resolveThumb asks Special:FilePath for the file at the requested width and
// returns the CDN URL it redirects to.
func (c *Client) resolveThumb(ctx context.Context, imageURL, size string) (string, error) {
	filename := imageURL[strings.LastIndex(imageURL, "/")+1:]
	lookup := c.pageBase + "Special:FilePath/" + filename + "?width=" + size

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookup, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// The client follows the Special:FilePath redirect chain; the final
	// request URL is the CDN thumbnail location.
	return resp.Request.URL.String(), nil
}
