package image

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/jmylchreest/wallhue/internal/colour"
)

// Extractor finds the dominant colours of an image.
type Extractor interface {
	// Extract returns up to count colours, each carrying its proportion of the image.
	// Proportions sum to 1.
	Extract(img image.Image, count int) ([]colour.Color, error)
}

// Algorithm names a colour extraction algorithm.
type Algorithm string

const (
	// AlgorithmDominant uses weighted dominant colour detection.
	AlgorithmDominant Algorithm = "dominant"

	// AlgorithmKMeans clusters sampled pixels with k-means. Results vary between runs.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns the supported algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmDominant, AlgorithmKMeans}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	return slices.Contains(ValidAlgorithms(), alg)
}

// NewExtractor creates an Extractor for the specified algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmDominant:
		return &DominantExtractor{}, nil
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
	Theme      ThemeType
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmDominant,
		ColorCount: 24,
		Theme:      ThemeAuto,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.ColorCount < 1 {
		return fmt.Errorf("color count must be at least 1, got %d", c.ColorCount)
	}
	if c.ColorCount > 256 {
		return fmt.Errorf("color count too large: %d (maximum: 256)", c.ColorCount)
	}
	return nil
}

// DominantExtractor wraps dominantcolor's weighted search.
type DominantExtractor struct{}

// Extract implements Extractor.
func (e *DominantExtractor) Extract(img image.Image, count int) ([]colour.Color, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}

	found := dominantcolor.FindWeight(img, count)
	if len(found) == 0 {
		return nil, fmt.Errorf("no dominant colours found in image")
	}

	colours := make([]colour.Color, 0, len(found))
	weights := make([]float64, 0, len(found))
	for _, c := range found {
		colours = append(colours, colour.FromColor(c.RGBA).AdjustAlpha(1))
		weights = append(weights, c.Weight)
	}
	return withProportions(colours, weights), nil
}

// KMeansExtractor clusters sampled pixels.
type KMeansExtractor struct {
	maxSamples int
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{maxSamples: 12000}
}

// Extract implements Extractor.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]colour.Color, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}

	dataset := e.sample(img)
	if len(dataset) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	k := min(count, len(dataset))
	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("k-means partition failed: %w", err)
	}

	colours := make([]colour.Color, 0, len(cc))
	weights := make([]float64, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 {
			continue
		}
		// Partition skips recentring when no point changes cluster on the first
		// pass, which leaves a single cluster at its random seed.
		center, err := c.Observations.Center()
		if err != nil || len(center) < 3 {
			continue
		}
		colours = append(colours, colour.New(
			channel(center[0]),
			channel(center[1]),
			channel(center[2]),
		))
		weights = append(weights, float64(len(c.Observations)))
	}
	if len(colours) == 0 {
		return nil, fmt.Errorf("k-means produced no clusters")
	}
	return withProportions(colours, weights), nil
}

// sample grid-samples the image so large wallpapers stay tractable.
func (e *KMeansExtractor) sample(img image.Image) clusters.Observations {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	step := 1
	if width*height > e.maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(e.maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, e.maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bl) / 65535.0,
			})
		}
	}
	return dataset
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// withProportions normalises weights to sum to 1 and attaches them.
func withProportions(colours []colour.Color, weights []float64) []colour.Color {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	for i := range colours {
		p := 1.0 / float64(len(colours))
		if total > 0 {
			p = weights[i] / total
		}
		colours[i] = colours[i].WithProportion(p)
	}
	return colours
}
