// Package api exposes the collage pipeline over HTTP: one request renders
// one group of photos, fetched by URL, straight to PNG.
package api

import (
	"image"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/collage"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/export"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/source"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type collageRequest struct {
	ImageURLs []string `json:"image_urls"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Shape     string   `json:"shape"`
	NoCorners bool     `json:"no_rounded_corners"`
	NoShadow  bool     `json:"no_shadow"`
	Frame     *int     `json:"frame"`
	Spacing   *int     `json:"spacing"`
}

// collageHandler composes the request's images as a single group and returns
// the lossless PNG rendering. Images that cannot be fetched are skipped and
// reported in the X-Failed-Images header, mirroring the batch pipeline's
// per-image failure isolation.
func collageHandler(c *gin.Context) {
	var req collageRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ImageURLs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_urls must not be empty"})
		return
	}

	settings := collage.DefaultSettings()
	if req.Width > 0 {
		settings.CanvasWidth = req.Width
	}
	if req.Height > 0 {
		settings.CanvasHeight = req.Height
	}
	if req.Shape != "" {
		shape, err := collage.ParseShape(req.Shape, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		settings.Shape = shape
	}
	settings.RoundedCorners = !req.NoCorners
	settings.DropShadow = !req.NoShadow
	if req.Frame != nil {
		settings.FrameThickness = *req.Frame
	}
	if req.Spacing != nil {
		settings.Spacing = *req.Spacing
	}
	// one request renders one group, however many URLs arrive
	settings.ImagesPerCollage = len(req.ImageURLs)
	if err := settings.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		images []*image.NRGBA
		failed []string
	)
	for _, u := range req.ImageURLs {
		img, err := source.Fetch(u)
		if err != nil {
			slog.Warn("skipping unfetchable image", "url", u, "error", err)
			failed = append(failed, u)
			continue
		}
		images = append(images, img)
	}

	canvas, err := collage.Compose(images, settings)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "failed": failed})
		return
	}

	data, err := export.Exporter{DPI: settings.DPI}.EncodePNG(canvas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(failed) > 0 {
		c.Header("X-Failed-Images", strconv.Itoa(len(failed)))
	}
	c.Data(http.StatusOK, "image/png", data)
}

// qrHandler returns a QR code PNG, typically encoding the download link of a
// finished collage.
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query parameter is required"})
		return
	}

	size := 400
	if s := c.Query("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be a positive integer"})
			return
		}
		size = v
	}

	data, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
