package source

import (
	"bytes"
	"image/color"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
)

func imageServer(t *testing.T, w, h int) (*httptest.Server, int) {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 40, G: 160, B: 220, A: 255})
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "image/png")
		rw.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv, buf.Len()
}

func TestFetch(t *testing.T) {
	srv, _ := imageServer(t, 64, 48)

	img, err := Fetch(srv.URL + "/photo.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("bounds = %v, want 64x48", img.Bounds())
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	if _, err := Fetch(srv.URL + "/missing.png"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

// A body larger than the read cap is truncated and must fail to decode
// instead of being buffered whole.
func TestFetchOversizedBody(t *testing.T) {
	srv, size := imageServer(t, 256, 256)

	old := maxFetchBytes
	maxFetchBytes = int64(size / 2)
	defer func() { maxFetchBytes = old }()

	if _, err := Fetch(srv.URL + "/huge.png"); err == nil {
		t.Fatal("expected decode error for truncated oversized body")
	}
}
