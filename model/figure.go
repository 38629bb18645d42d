package model

// ImageContent references a rendered raster figure on disk.
//
// The file must exist and be readable at encode time. Width and Height
// optionally override the pixel dimensions probed from the image header;
// zero means "read from the file".
type ImageContent struct {
	Path   string
	Width  int
	Height int
}
