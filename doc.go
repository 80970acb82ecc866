// Package droidicon generates Android launcher icons from a single image.
//
// # Overview
//
// droidicon turns one source picture into the launcher assets an Android
// project expects in its res/ tree: the legacy square icon, its round
// twin, and the adaptive icon foreground layer, at the five standard
// density buckets.
//
// # Quick Start
//
//	import "github.com/gogpu/droidicon"
//
//	res, err := droidicon.Run("src/assets/images/icon.jpeg", "android/app/src/main/res")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, icon := range res.Icons {
//	    fmt.Println(icon.Path)
//	}
//
// # Pipeline
//
// Every run performs the same steps:
//   - Load: decode PNG, JPEG, GIF, BMP, TIFF or WebP
//   - Trim: flatten transparency onto white and crop the white margin,
//     optionally padding the subject with a white border
//   - Legacy: cover-fit the subject to size x size (ic_launcher.png, with
//     ic_launcher_round.png holding the same bytes)
//   - Foreground: cover-fit the subject to 68% of the canvas and centre it
//     on a transparent size x size layer (ic_launcher_foreground.png)
//
// Densities are written in table order:
//
//	mipmap-mdpi      48
//	mipmap-hdpi      72
//	mipmap-xhdpi     96
//	mipmap-xxhdpi   144
//	mipmap-xxxhdpi  192
//
// # Errors
//
// Run reports ErrSourceNotFound and ErrDecode before writing anything.
// ErrEncodeOrWrite stops the run at the failing file and leaves earlier
// icons in place. Use errors.Is to match them.
//
// # Logging
//
// The package is silent by default. See SetLogger.
package droidicon

// Version is the current version of droidicon.
const Version = "0.1.0"
