package rtf

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for dimension probing. PNG and JPEG are the two
	// first-class embedding formats; BMP and TIFF cover files that fall
	// back to the default picture tag but still carry readable headers.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/yanmingyu92/rtfreport/format"
	"github.com/yanmingyu92/rtfreport/model"
)

// twipsPerPixel converts pixel dimensions to twips at the 96dpi screen
// resolution word processors assume for embedded pictures.
const twipsPerPixel = 15

// Fallback pixel dimensions used when the image header cannot be decoded.
const (
	fallbackWidthPx  = 600
	fallbackHeightPx = 400
)

// hexLineWidth is the column at which the hex payload wraps.
const hexLineWidth = 128

// scaleToFit returns goal dimensions in twips for a native pixel size
// within the given bounding box, preserving aspect ratio and never
// upscaling.
func scaleToFit(nativeW, nativeH, maxW, maxH int) (goalW, goalH int) {
	nw := nativeW * twipsPerPixel
	nh := nativeH * twipsPerPixel
	if nw <= 0 || nh <= 0 {
		return 0, 0
	}
	scale := 1.0
	if s := float64(maxW) / float64(nw); s < scale {
		scale = s
	}
	if s := float64(maxH) / float64(nh); s < scale {
		scale = s
	}
	return int(float64(nw)*scale + 0.5), int(float64(nh)*scale + 0.5)
}

// picture embeds the figure image as an RTF picture group scaled to fit the
// maxW x maxH bounding box (twips).
//
// A missing file is a hard failure wrapping [ErrImageNotFound]. Everything
// else degrades: unrecognized formats embed under the default tag, an
// undecodable header substitutes a fixed size, and a read failure
// mid-payload is replaced by a visible placeholder paragraph. The payload
// is hex-encoded directly onto the output stream, so peak memory stays
// independent of image size.
func (dw *docWriter) picture(img *model.ImageContent, fs int, maxW, maxH int) error {
	f, err := os.Open(img.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newEncodeError("EmbedImage", fmt.Errorf("%w: %s", ErrImageNotFound, img.Path))
		}
		return newEncodeError("EmbedImage", err)
	}
	defer f.Close()

	fm := format.Detect(img.Path)
	var magic [8]byte
	if n, err := io.ReadFull(f, magic[:]); err == nil || n > 0 {
		// Magic bytes beat the extension for mislabeled files.
		if mf := format.DetectFromMagic(magic[:n]); mf != format.Unknown {
			fm = mf
		}
	}
	if fm == format.Unknown {
		dw.warn(warningf(WarnUnsupportedFormat,
			"unrecognized image format for %s, embedding with default tag", img.Path))
	}

	nativeW, nativeH := img.Width, img.Height
	if nativeW <= 0 || nativeH <= 0 {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return newEncodeError("EmbedImage", err)
		}
		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			dw.warn(warningf(WarnDecodeFailed,
				"cannot decode image header for %s, assuming %dx%d: %v",
				img.Path, fallbackWidthPx, fallbackHeightPx, err))
			cfg.Width, cfg.Height = fallbackWidthPx, fallbackHeightPx
		}
		if nativeW <= 0 {
			nativeW = cfg.Width
		}
		if nativeH <= 0 {
			nativeH = cfg.Height
		}
	}

	goalW, goalH := scaleToFit(nativeW, nativeH, maxW, maxH)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return newEncodeError("EmbedImage", err)
	}

	dw.raw(`\pard\plain\qc`)
	dw.rawf(`{\pict%s\picw%d\pich%d\picwgoal%d\pichgoal%d`,
		fm.BlipTag(), nativeW, nativeH, goalW, goalH)
	dw.raw("\n")
	if dw.err == nil {
		ww := &wrapWriter{w: dw.w, width: hexLineWidth}
		if _, err := io.Copy(hex.NewEncoder(ww), f); err != nil {
			// The group must still close; replace the figure with a
			// visible note rather than dropping the whole document.
			dw.raw("}\n")
			dw.placeholder(fs, fmt.Sprintf("[figure unavailable: %s]", img.Path))
			dw.warn(warningf(WarnEncodeFailed, "embedding %s failed: %v", img.Path, err))
			return nil
		}
	}
	dw.raw("\n}")
	dw.raw(`\par`)
	dw.raw("\n")
	return nil
}

// placeholder emits a centered note standing in for a degraded sub-block.
func (dw *docWriter) placeholder(fs int, msg string) {
	dw.rawf(`\pard\plain\f0\fs%d\qc `, fs)
	dw.raw(string(Escape(msg)))
	dw.raw(`\par`)
	dw.raw("\n")
}

// wrapWriter inserts a newline every width bytes. RTF readers ignore the
// newlines; they keep hex payload lines at a manageable length.
type wrapWriter struct {
	w     io.Writer
	width int
	col   int
}

func (ww *wrapWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if ww.col >= ww.width {
			if _, err := io.WriteString(ww.w, "\n"); err != nil {
				return written, err
			}
			ww.col = 0
		}
		chunk := p
		if room := ww.width - ww.col; len(chunk) > room {
			chunk = chunk[:room]
		}
		n, err := ww.w.Write(chunk)
		written += n
		ww.col += n
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}
