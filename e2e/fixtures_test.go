//go:build e2e && unix

package main

import (
	"archive/zip"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates the isolated HOME the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "gridgazer-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = dir
	return dir, nil
}

// CreateImages writes n small PNGs named 01.png, 02.png... under
// workspace/name and returns the directory
func (tf *TUITestFramework) CreateImages(name string, n int) (string, error) {
	dir := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	for i := 1; i <= n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%02d.png", i))
		if err := writePNG(path, i, i+1); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// CreateArchive writes a zip with the given PNG members into dir
func (tf *TUITestFramework) CreateArchive(dir, name string, members ...string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, m := range members {
		w, err := zw.Create(m)
		if err != nil {
			return err
		}
		if err := png.Encode(w, solid(3, 2)); err != nil {
			return err
		}
	}
	return zw.Close()
}

func writePNG(path string, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, solid(w, h))
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}
