// Package swf encodes vector animation documents into uncompressed SWF
// files.
//
// # Overview
//
// swf is write-only. A Document holds a file header and an ordered list of
// tags; MarshalBinary turns it into the exact bytes of the file. Every
// length-prefixed record (tag, shape, document) is encoded into its own
// buffer first, measured, and then prefixed with its header.
//
// # Quick Start
//
//	import "github.com/gogpu/swf"
//
//	doc := swf.NewDocument(swf.NewHeader(10, 550*swf.TwipsPerPixel, 400*swf.TwipsPerPixel, 12, 1))
//
//	shape := swf.BuildShape().
//	    LineStyle(swf.LineStyle{Width: 20, Color: swf.Black}).
//	    Rect(2020, 1680, 2880, 2320).
//	    Build()
//
//	doc.Add(
//	    swf.SetBackgroundColor{Color: &swf.White},
//	    swf.DefineShape{ID: 1, Shape: shape},
//	    swf.PlaceObject2{Depth: 1, CharacterID: 1},
//	    swf.ShowFrame{},
//	    swf.End{},
//	)
//
//	f, _ := os.Create("out.swf")
//	doc.WriteTo(f)
//
// # Units
//
// Coordinates and widths are in twips, 1/20 of a pixel. The y axis points
// down. Shape records are relative: moves and edges carry deltas from the
// current pen position, which starts at the origin and returns there after
// EndShape.
//
// # Unsupported Features
//
// Compressed containers, gradients, color transforms and clip actions are
// modelled but not encoded. Using them fails with ErrUnsupported, and the
// whole document fails with it: output is all or nothing.
package swf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
