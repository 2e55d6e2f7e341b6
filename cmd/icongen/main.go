package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/lenaapp/icongen"
	"github.com/lenaapp/icongen/utils"
)

const helpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ ││││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

App icon asset generator.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source     = flag.String("in", "", "Source image (file, URL or - for a stdin pipe); empty renders the icon from scratch")
	outDir     = flag.String("out", "assets", "Assets output directory")
	size       = flag.Int("size", icongen.DefaultSize, "Icon resolution")
	letter     = flag.String("letter", icongen.DefaultLetter, "Letter drawn on the generated icon")
	fontPath   = flag.String("font", "", "Font file tried before the built-in candidates")
	splashSize = flag.Int("splash", 0, "Splash icon size (0 selects the pipeline default)")
	faceDetect = flag.Bool("face", false, "Center the crop on the dominant face")
	faceAngle  = flag.Float64("angle", 0.0, "Plane rotated faces angle")
	cascade    = flag.String("cc", "", "Cascade classifier")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *faceDetect && len(*cascade) == 0 {
		log.Fatalf(utils.DecorateText("Please specify a face classifier in case you are using the -face flag!\n", utils.ErrorMessage))
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is generating the icon assets...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*100, true)

	now := time.Now()
	spinner.Start()

	icon, splash, err := buildAssets()
	if err == nil {
		err = icongen.WriteAssets(*outDir, icon, splash)
	}

	if err == nil {
		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
			utils.DecorateText("is generating the icon assets... ✔", utils.DefaultMessage))
	}
	spinner.Stop()

	if err != nil {
		log.Fatalf(
			utils.DecorateText("Error generating the icon assets: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if err := listAssets(*outDir); err != nil {
		log.Fatalf(
			utils.DecorateText("Error verifying the written assets: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// buildAssets runs one of the two pipelines, depending on whether a source
// image was provided, and returns the finished icon and splash canvases.
func buildAssets() (icon, splash *image.NRGBA, err error) {
	if *source == "" {
		s := icongen.NewSynthesizer()
		s.Size = *size
		s.Letter = *letter
		if *fontPath != "" {
			s.FontPaths = append([]string{*fontPath}, s.FontPaths...)
		}

		icon, err = s.Render()
		if err != nil {
			return nil, nil, err
		}

		if s.FontUsed != "" {
			fmt.Fprintf(os.Stderr, "\rUsing font: %s\n", s.FontUsed)
		}

		// The generated splash shows the icon at a fixed 400px.
		iconSize := *splashSize
		if iconSize == 0 {
			iconSize = 400
		}
		return icon, icongen.Splash(icon, s.Size, iconSize), nil
	}

	in, err := openSource(*source)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	p := icongen.NewProcessor(*size)
	p.FaceDetect = *faceDetect
	p.FaceAngle = *faceAngle
	p.Classifier = *cascade

	icon, err = p.Icon(in)
	if err != nil {
		return nil, nil, err
	}
	return icon, icongen.Splash(icon, *size, *splashSize), nil
}

// openSource converts the source argument to a readable file,
// be it a local path, a URL or a stdin pipe.
func openSource(in string) (io.ReadCloser, error) {
	if utils.IsValidUrl(in) {
		return utils.DownloadImage(in)
	}

	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// listAssets re-opens every written asset and prints its dimensions and
// file size, so a broken write surfaces right away.
func listAssets(dir string) error {
	for _, name := range icongen.AssetFiles {
		path := filepath.Join(dir, name)

		f, err := os.Open(path)
		if err != nil {
			return err
		}

		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("could not decode %s: %w", name, err)
		}

		fi, err := f.Stat()
		f.Close()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "  %s %dx%d (%dKB)\n",
			utils.DecorateText(name, utils.SuccessMessage), cfg.Width, cfg.Height, fi.Size()/1024)
	}
	return nil
}
