package rtf

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yanmingyu92/rtfreport/model"
)

// writeTestPNG writes a w x h PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScaleToFitPreservesAspectRatio(t *testing.T) {
	// 10000x10000 pixel source against a 9360x6480 twip box.
	goalW, goalH := scaleToFit(10000, 10000, 9360, 6480)

	if goalW != goalH {
		t.Errorf("square image scaled to %dx%d, aspect ratio lost", goalW, goalH)
	}
	if goalW > 9360 || goalH > 6480 {
		t.Errorf("goal %dx%d exceeds bounding box 9360x6480", goalW, goalH)
	}
	if goalH != 6480 {
		t.Errorf("goal height %d, want tight fit 6480", goalH)
	}
}

func TestScaleToFitNeverUpscales(t *testing.T) {
	// 100x50 px is 1500x750 twips, well inside the box: kept as-is.
	goalW, goalH := scaleToFit(100, 50, 9360, 6480)
	if goalW != 1500 || goalH != 750 {
		t.Errorf("small image scaled to %dx%d, want native 1500x750", goalW, goalH)
	}
}

func TestScaleToFitDegenerate(t *testing.T) {
	if w, h := scaleToFit(0, 0, 9360, 6480); w != 0 || h != 0 {
		t.Errorf("zero native size: got %dx%d", w, h)
	}
}

func TestPictureMissingFileIsFatal(t *testing.T) {
	var sb strings.Builder
	dw := &docWriter{w: &sb}

	err := dw.picture(&model.ImageContent{Path: "/nonexistent/fig.png"}, 18, 9360, 6480)
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("got %v, want ErrImageNotFound", err)
	}
}

func TestPictureEmbedsPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "fig.png", 20, 10)

	var sb strings.Builder
	dw := &docWriter{w: &sb}
	if err := dw.picture(&model.ImageContent{Path: path}, 18, 9360, 6480); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if len(dw.warnings) != 0 {
		t.Errorf("unexpected warnings: %v", dw.warnings)
	}
	for _, want := range []string{
		`{\pict\pngblip`,
		`\picw20\pich10`,
		`\picwgoal300\pichgoal150`,
		"89504e47", // hex of the PNG magic, lowercase, no separators
	} {
		if !strings.Contains(out, want) {
			t.Errorf("picture output missing %q", want)
		}
	}
	if opens, closes := strings.Count(out, "{"), strings.Count(out, "}"); opens != closes {
		t.Errorf("unbalanced picture group: %d opens, %d closes", opens, closes)
	}
}

func TestPictureExplicitDimensionsOverrideProbe(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "fig.png", 20, 10)

	var sb strings.Builder
	dw := &docWriter{w: &sb}
	img := &model.ImageContent{Path: path, Width: 200, Height: 100}
	if err := dw.picture(img, 18, 9360, 6480); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `\picw200\pich100`) {
		t.Error("explicit pixel dimensions were not used")
	}
}

func TestPictureMagicBeatsExtension(t *testing.T) {
	// PNG bytes behind a .jpg name embed under the PNG tag.
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "mislabeled.jpg", 4, 4)

	var sb strings.Builder
	dw := &docWriter{w: &sb}
	if err := dw.picture(&model.ImageContent{Path: path}, 18, 9360, 6480); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `\pngblip`) {
		t.Error("magic bytes did not override the extension")
	}
	if len(dw.warnings) != 0 {
		t.Errorf("unexpected warnings: %v", dw.warnings)
	}
}

func TestPictureUnknownFormatDegrades(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figure.dat")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	dw := &docWriter{w: &sb}
	if err := dw.picture(&model.ImageContent{Path: path}, 18, 9360, 6480); err != nil {
		t.Fatalf("unknown format should degrade, got %v", err)
	}
	out := sb.String()

	// Default tag plus the fixed fallback dimensions, and both warnings.
	if !strings.Contains(out, `\pngblip`) {
		t.Error("fallback picture tag not used")
	}
	if !strings.Contains(out, `\picw600\pich400`) {
		t.Errorf("fallback dimensions not used:\n%s", out[:min(len(out), 200)])
	}

	codes := map[string]bool{}
	for _, w := range dw.warnings {
		codes[w.Code] = true
	}
	if !codes[WarnUnsupportedFormat] || !codes[WarnDecodeFailed] {
		t.Errorf("expected unsupported-format and decode warnings, got %v", dw.warnings)
	}
}

func TestWrapWriterColumns(t *testing.T) {
	var sb strings.Builder
	ww := &wrapWriter{w: &sb, width: 8}
	if _, err := ww.Write([]byte("0123456789abcdefgh")); err != nil {
		t.Fatal(err)
	}
	want := "01234567\n89abcdef\ngh"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}
