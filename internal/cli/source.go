package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/wallhue/internal/image"
	"github.com/jmylchreest/wallhue/internal/scheme"
	"github.com/jmylchreest/wallhue/internal/util/imagecache"
	"github.com/spf13/cobra"
)

// extractFlags are shared by every command that reads a wallpaper.
type extractFlags struct {
	algorithm string
	colours   int
	cache     bool
}

func (f *extractFlags) register(cmd *cobra.Command) {
	defaults := image.DefaultExtractorConfig()

	algorithms := make([]string, 0, len(image.ValidAlgorithms()))
	for _, alg := range image.ValidAlgorithms() {
		algorithms = append(algorithms, string(alg))
	}

	cmd.Flags().StringVar(&f.algorithm, "algorithm", envOr(EnvAlgorithm, string(defaults.Algorithm)),
		fmt.Sprintf("colour extraction algorithm (%s)", strings.Join(algorithms, ", ")))
	cmd.Flags().IntVarP(&f.colours, "colours", "c", defaults.ColorCount, "number of candidate colours to extract")
	cmd.Flags().BoolVar(&f.cache, "cache", true, "keep downloaded wallpapers in the user cache directory")
}

// buildScheme loads the wallpaper at input (file, directory or URL), extracts its
// colours and generates a scheme from them.
func buildScheme(ctx context.Context, opts *rootOptions, flags extractFlags, input string) (*scheme.Scheme, error) {
	theme, err := image.ParseThemeType(opts.theme)
	if err != nil {
		return nil, err
	}

	config := image.ExtractorConfig{
		Algorithm:  image.Algorithm(flags.algorithm),
		ColorCount: flags.colours,
		Theme:      theme,
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extractor configuration: %w", err)
	}

	path, err := image.ResolveImagePath(input)
	if err != nil {
		return nil, err
	}
	if path != input {
		opts.logger.Info("selected wallpaper", "path", path)
	}

	opts.logger.Debug("loading image", "path", path, "algorithm", config.Algorithm, "colours", config.ColorCount)
	img, err := newImageLoader(opts, flags).Load(ctx, path)
	if err != nil {
		return nil, err
	}

	analysis, err := image.Analyse(img, config)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}
	opts.logger.Debug("extracted colours", "count", len(analysis.DominantColors()), "light", analysis.IsLight())

	s := scheme.New().WithLogger(opts.logger.Named("scheme"))
	s.Generate(analysis)
	return s, nil
}

func newImageLoader(opts *rootOptions, flags extractFlags) *image.SmartLoader {
	loader := image.NewSmartLoader()
	if !flags.cache {
		return loader
	}

	dir, err := imagecache.DefaultDir()
	if err != nil {
		opts.logger.Warn("remote images will not be cached", "error", err)
		return loader
	}
	cache := imagecache.New(dir)
	opts.logger.Debug("caching remote images", "dir", cache.Dir())
	return loader.WithCache(cache)
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, opts *rootOptions, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - generated configuration is not secret
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	opts.logger.Info("wrote output", "path", path, "bytes", len(data))
	return nil
}
