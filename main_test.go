package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestRun_RendersSceneToFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "renders", "tiny.png")

	var stdout bytes.Buffer
	args := []string{"-w", "24", "-s", "2", "-d", "4", "-tile-size", "8", "-thumbnail", "12", "-o", outPath, "18"}
	if err := run(context.Background(), args, filepath.Join(dir, "missing.env"), &stdout); err != nil {
		t.Fatalf("run failed: %v\nOutput:\n%s", err, stdout.String())
	}

	img, err := imaging.Open(outPath)
	if err != nil {
		t.Fatalf("Render not written: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 18 {
		t.Errorf("Expected 24x18 render, got %v", img.Bounds())
	}

	thumb, err := imaging.Open(filepath.Join(dir, "renders", "tiny_thumb.png"))
	if err != nil {
		t.Fatalf("Thumbnail not written: %v", err)
	}
	if thumb.Bounds().Dx() != 12 || thumb.Bounds().Dy() != 9 {
		t.Errorf("Expected 12x9 thumbnail, got %v", thumb.Bounds())
	}

	log := stdout.String()
	for _, want := range []string{"default scene", "Render saved as", "Thumbnail saved as"} {
		if !strings.Contains(log, want) {
			t.Errorf("Expected output to mention %q, got:\n%s", want, log)
		}
	}
}

func TestRun_JSONScene(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "single.json")
	sceneJSON := `{
  "name": "single",
  "materials": {"red": {"type": "lambertian", "albedo": [0.9, 0.1, 0.1]}},
  "spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "red"}]
}`
	if err := os.WriteFile(scenePath, []byte(sceneJSON), 0644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "single.jpg")
	args := []string{"-scene", scenePath, "-s", "1", "-o", outPath, "9"}
	var stdout bytes.Buffer
	if err := run(context.Background(), args, filepath.Join(dir, ".env"), &stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "Using single scene (1 objects)") {
		t.Errorf("Expected JSON scene to be used, got:\n%s", stdout.String())
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("Expected JPEG output: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nonexistent", "-o", filepath.Join(dir, "a.png"), "4"}},
		{"missing scene file", []string{"-scene", filepath.Join(dir, "nope.json"), "-o", filepath.Join(dir, "b.png"), "4"}},
		{"zero samples", []string{"-s", "0", "4"}},
		{"bad height", []string{"tiny"}},
		{"unsupported format", []string{"-s", "1", "-o", filepath.Join(dir, "c.webp"), "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := run(context.Background(), tt.args, filepath.Join(dir, ".env"), &stdout); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-h"}, filepath.Join(t.TempDir(), ".env"), &stdout)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(stdout.String(), "Usage: raytracer") {
		t.Errorf("Expected usage text, got:\n%s", stdout.String())
	}
}
