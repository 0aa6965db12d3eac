package source

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// maxFetchBytes caps how much of a remote body is read before decoding, so a
// hostile URL cannot exhaust memory. Variable for tests.
var maxFetchBytes int64 = 32 << 20

// Fetch downloads and decodes an image from a URL. Used by the HTTP
// front-end, where source photos arrive as links instead of local paths.
func Fetch(url string) (*image.NRGBA, error) {
	client := http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, fmt.Errorf("fetch %s: zero-dimension image", url)
	}
	return imaging.Clone(img), nil
}
