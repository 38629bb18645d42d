package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"figure.png", PNG},
		{"figure.PNG", PNG},
		{"km-plot.jpg", JPEG},
		{"km-plot.jpeg", JPEG},
		{"/tmp/out/forest.JPG", JPEG},
		{"figure.gif", Unknown},
		{"figure.bmp", Unknown},
		{"figure", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10}

	if got := DetectFromMagic(png); got != PNG {
		t.Errorf("PNG magic detected as %v", got)
	}
	if got := DetectFromMagic(jpeg); got != JPEG {
		t.Errorf("JPEG magic detected as %v", got)
	}
	if got := DetectFromMagic([]byte("GIF89a")); got != Unknown {
		t.Errorf("GIF magic detected as %v, want Unknown", got)
	}
	if got := DetectFromMagic(nil); got != Unknown {
		t.Errorf("empty data detected as %v, want Unknown", got)
	}
}

func TestBlipTag(t *testing.T) {
	if got := PNG.BlipTag(); got != `\pngblip` {
		t.Errorf("PNG.BlipTag() = %q", got)
	}
	if got := JPEG.BlipTag(); got != `\jpegblip` {
		t.Errorf("JPEG.BlipTag() = %q", got)
	}
	// Unknown falls back to the default tag.
	if got := Unknown.BlipTag(); got != `\pngblip` {
		t.Errorf("Unknown.BlipTag() = %q", got)
	}
}

func TestStringAndExtension(t *testing.T) {
	if PNG.String() != "PNG" || JPEG.String() != "JPEG" || Unknown.String() != "Unknown" {
		t.Error("unexpected Format.String() values")
	}
	if PNG.Extension() != ".png" || JPEG.Extension() != ".jpg" || Unknown.Extension() != "" {
		t.Error("unexpected Format.Extension() values")
	}
}
