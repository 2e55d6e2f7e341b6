package icongen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// The fixed asset filenames shared by both pipelines.
const (
	IconFile     = "icon.png"
	AdaptiveFile = "adaptive-icon.png"
	SplashFile   = "splash-icon.png"
	FaviconFile  = "favicon.png"
)

// FaviconSize is the fixed favicon resolution.
const FaviconSize = 48

// AssetFiles lists the produced filenames in write order.
var AssetFiles = []string{IconFile, AdaptiveFile, SplashFile, FaviconFile}

// WriteAssets persists the icon family into dir: the icon itself, the
// adaptive icon (same content), the splash icon and a 48×48 favicon
// downscaled from the icon. Files are written sequentially without any
// atomicity guarantee; a failure leaves the already written files in place.
func WriteAssets(dir string, icon, splash image.Image) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the assets directory: %w", err)
	}

	favicon := imaging.Resize(icon, FaviconSize, FaviconSize, imaging.Lanczos)

	assets := []struct {
		name string
		img  image.Image
	}{
		{IconFile, icon},
		{AdaptiveFile, icon},
		{SplashFile, splash},
		{FaviconFile, favicon},
	}

	for _, asset := range assets {
		if err := writePNG(filepath.Join(dir, asset.name), asset.img); err != nil {
			return err
		}
	}
	return nil
}

// writePNG encodes img into a newly created file.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}
	return nil
}
