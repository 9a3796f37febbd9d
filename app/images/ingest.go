// Package images converts user-selected files into the payloads carried by
// a post's image carousel.
package images

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/arypfer/Proty-Content-Calendar/app/models"

	"golang.org/x/sync/errgroup"
)

// MaxImageBytes caps a single payload.
const MaxImageBytes = 10 << 20

// File is one user-selected file to ingest.
type File struct {
	Name   string
	Reader io.Reader
}

// IngestFiles reads every file concurrently and returns payloads in the
// same order the files were given: each result is written at its input
// index, so completion order never leaks into carousel order.
func IngestFiles(ctx context.Context, files []File) ([]models.Image, error) {
	results := make([]models.Image, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := io.ReadAll(io.LimitReader(f.Reader, MaxImageBytes+1))
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", f.Name, err)
			}
			if len(data) == 0 {
				return fmt.Errorf("%s is empty", f.Name)
			}
			if len(data) > MaxImageBytes {
				return fmt.Errorf("%s exceeds the %d byte limit", f.Name, MaxImageBytes)
			}
			results[i] = models.Image{
				MIMEType: http.DetectContentType(data),
				Data:     data,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
