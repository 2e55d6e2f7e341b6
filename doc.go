/*
Package icongen produces the app icon asset family (icon, adaptive icon,
splash icon and favicon) used by the Lena mobile application.

Two pipelines are provided. The Synthesizer builds the icon from scratch:
a vertical sunset gradient clipped to a rounded square, a soft radial glow
and a centered letter glyph. The Processor derives the icon from an existing
artwork by cropping it to a centered square and upscaling it with a Lanczos
filter. Both converge on the same output contract through WriteAssets.

The package provides a command line interface as well. To check the
supported commands type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"fmt"

		"github.com/lenaapp/icongen"
	)

	func main() {
		s := icongen.NewSynthesizer()

		icon, err := s.Render()
		if err != nil {
			fmt.Printf("Error rendering the icon: %s", err.Error())
			return
		}

		splash := icongen.Splash(icon, s.Size, 400)
		if err := icongen.WriteAssets("assets", icon, splash); err != nil {
			fmt.Printf("Error writing the assets: %s", err.Error())
		}
	}
*/
package icongen
