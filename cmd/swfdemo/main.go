// Command swfdemo writes a one-frame SWF file with a stroked rectangle,
// optionally with a PNG preview of the shape.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/swf"
	"github.com/gogpu/swf/preview"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

func main() {
	var (
		output  = flag.String("output", "demo.swf", "output file, - for stdout")
		width   = flag.Int("width", 550, "stage width in pixels")
		height  = flag.Int("height", 400, "stage height in pixels")
		rate    = flag.Uint("rate", 12, "frames per second")
		frames  = flag.Uint("frames", 1, "frame count written to the header")
		version = flag.Uint("version", 3, "file version")
		bg      = flag.String("bg", "#ffffff", "background color")
		prev    = flag.String("preview", "", "write a PNG preview of the shape to this file")
		verbose = flag.Bool("v", false, "log encoding details to stderr")
	)
	flag.Parse()

	if *verbose {
		swf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	background, err := swf.ParseHex(*bg)
	if err != nil {
		log.Fatal(err)
	}

	if *rate > 0xFF || *frames > 0xFFFF || *version > 0xFF {
		log.Fatal("rate, frames or version out of range")
	}

	header := swf.NewHeader(uint8(*version),
		int32(*width)*swf.TwipsPerPixel, int32(*height)*swf.TwipsPerPixel,
		uint8(*rate), uint16(*frames))
	shape := demoShape()

	doc := swf.NewDocument(header, swf.WithEndTag())
	bgColor := background.Opaque()
	doc.Add(
		swf.SetBackgroundColor{Color: &bgColor},
		swf.DefineShape{ID: 1, Shape: shape},
		swf.PlaceObject2{Depth: 1, CharacterID: 1, Matrix: &swf.Matrix{}},
		swf.ShowFrame{},
	)

	if err := writeDocument(doc, *output); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}
	if *output != pipeName {
		log.Printf("SWF saved to %s (%dx%d)\n", *output, *width, *height)
	}

	if *prev != "" {
		if err := writePreview(shape, background, *prev); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s\n", *prev)
	}
}

// demoShape is a 144x116 pixel rectangle with a one pixel black outline.
func demoShape() *swf.Shape {
	return swf.BuildShape().
		LineStyle(swf.LineStyle{Width: 20, Color: swf.Black}).
		MoveTo(4900, 1680).
		LineTo(4900, 4000).
		LineTo(2020, 4000).
		LineTo(2020, 1680).
		Close().
		Build()
}

// writeDocument encodes doc completely before anything is written, so a
// failed encoding leaves no partial file behind.
func writeDocument(doc *swf.Document, out string) error {
	b, err := doc.MarshalBinary()
	if err != nil {
		return err
	}

	var dst io.Writer
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("unable to create the destination file: %w", err)
		}
		defer f.Close()
		dst = f
	}

	_, err = dst.Write(b)
	return err
}

func writePreview(shape *swf.Shape, bg swf.RGBA, name string) error {
	img, err := preview.Render(shape, preview.Options{
		Background: bg,
		Label:      "swfdemo",
	})
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
