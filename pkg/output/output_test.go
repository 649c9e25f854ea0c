package output

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 200, A: 255})
		}
	}
	return img
}

func TestSaveAndReopen(t *testing.T) {
	dir := t.TempDir()
	img := testImage(32, 18)

	for _, name := range []string{"render.png", "nested/dir/render.jpg", "render.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(img, path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			reopened, err := imaging.Open(path)
			if err != nil {
				t.Fatalf("Failed to reopen %s: %v", path, err)
			}
			if reopened.Bounds().Dx() != 32 || reopened.Bounds().Dy() != 18 {
				t.Errorf("Expected 32x18, got %v", reopened.Bounds())
			}
		})
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	if err := Save(testImage(2, 2), filepath.Join(t.TempDir(), "render.xyz")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestEncodePNG_PreservesPixels(t *testing.T) {
	img := testImage(8, 4)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	r, g, b, _ := decoded.At(5, 3).RGBA()
	if uint8(r>>8) != 20 || uint8(g>>8) != 12 || uint8(b>>8) != 200 {
		t.Errorf("Pixel (5,3) changed: got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"img.png":    "image/png",
		"a/b.JPG":    "image/jpeg",
		"x.jpeg":     "image/jpeg",
		"anim.gif":   "image/gif",
		"scan.tiff":  "image/tiff",
		"legacy.bmp": "image/bmp",
		"notes.txt":  "application/octet-stream",
	}
	for path, expected := range tests {
		if got := ContentType(path); got != expected {
			t.Errorf("ContentType(%q) = %q, want %q", path, got, expected)
		}
	}
}

func TestThumbnail(t *testing.T) {
	thumb := Thumbnail(testImage(160, 90), 32)
	if thumb.Bounds().Dx() != 32 || thumb.Bounds().Dy() != 18 {
		t.Errorf("Expected 32x18 thumbnail, got %v", thumb.Bounds())
	}

	// Never upscales
	small := Thumbnail(testImage(16, 9), 64)
	if small.Bounds().Dx() != 16 {
		t.Errorf("Expected unscaled width 16, got %d", small.Bounds().Dx())
	}
}

func TestThumbnailPath(t *testing.T) {
	tests := map[string]string{
		"img.png":           "img_thumb.png",
		"out/render.jpg":    "out/render_thumb.jpg",
		"no-extension":      "no-extension_thumb",
		"dir.v2/scene.tiff": "dir.v2/scene_thumb.tiff",
	}
	for path, expected := range tests {
		if got := ThumbnailPath(path); got != expected {
			t.Errorf("ThumbnailPath(%q) = %q, want %q", path, got, expected)
		}
	}
}

// mockS3 records PutObject calls
type mockS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("upload context has no deadline")
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	m.inputs = append(m.inputs, input)
	m.bodies = append(m.bodies, body)
	return &s3.PutObjectOutput{}, m.err
}

type recordingLogger struct {
	lines int
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines++
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &mockS3{}
	logger := &recordingLogger{}
	uploader := NewS3UploaderWithClient(client, "renders", "gallery/2024", logger)

	data := []byte("not really a png")
	key, err := uploader.Upload(context.Background(), "output/default/img.png", data)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if key != "gallery/2024/img.png" {
		t.Errorf("Expected key gallery/2024/img.png, got %q", key)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("Expected one PutObject call, got %d", len(client.inputs))
	}
	input := client.inputs[0]
	if aws.StringValue(input.Bucket) != "renders" || aws.StringValue(input.Key) != key {
		t.Errorf("Unexpected target s3://%s/%s", aws.StringValue(input.Bucket), aws.StringValue(input.Key))
	}
	if aws.StringValue(input.ContentType) != "image/png" {
		t.Errorf("Expected image/png, got %q", aws.StringValue(input.ContentType))
	}
	if aws.Int64Value(input.ContentLength) != int64(len(data)) || !bytes.Equal(client.bodies[0], data) {
		t.Error("Uploaded body does not match")
	}
	if logger.lines != 1 {
		t.Errorf("Expected one log line, got %d", logger.lines)
	}
}

func TestS3Uploader_UploadError(t *testing.T) {
	client := &mockS3{err: errors.New("access denied")}
	uploader := NewS3UploaderWithClient(client, "renders", "", nil)

	if _, err := uploader.Upload(context.Background(), "img.jpg", []byte{1}); err == nil {
		t.Error("Expected upload error to propagate")
	}
	if key := uploader.ObjectKey("a/b/img.jpg"); key != "img.jpg" {
		t.Errorf("Expected bare key without prefix, got %q", key)
	}
}
