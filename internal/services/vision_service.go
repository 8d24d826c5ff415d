package services

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// VisionServiceInterface scores a place photo for visual quality. Any
// failure scores 0 so candidate fetching never blocks on imagery.
type VisionServiceInterface interface {
	ScoreImage(ctx context.Context, photoURL string) float64
}

type VisionService struct {
	HTTP   *http.Client
	logger *zap.Logger
}

func NewVisionService(logger *zap.Logger) VisionServiceInterface {
	return &VisionService{
		HTTP:   &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (v *VisionService) ScoreImage(ctx context.Context, photoURL string) float64 {
	if photoURL == "" {
		return 0
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return 0
	}

	resp, err := v.HTTP.Do(req)
	if err != nil {
		v.logger.Debug("image fetch failed", zap.Error(err))
		return 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		v.logger.Debug("image decode failed", zap.Error(err))
		return 0
	}

	return contrastScore(img)
}

// contrastScore normalizes the standard deviation of luminance to [0, 1].
// Flat, washed-out photos score near 0; well-exposed ones near 1.
func contrastScore(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	const stride = 8 // sample every 8th pixel in each direction
	var sum, sumSq float64
	var count int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			sum += lum
			sumSq += lum * lum
			count++
		}
	}
	if count == 0 {
		return 0
	}

	mean := sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	if variance < 0 {
		variance = 0
	}
	// 64 is roughly the deviation of a full-range image.
	return math.Min(1, math.Sqrt(variance)/64)
}
