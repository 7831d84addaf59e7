package pacanim

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const blueAtlasJSON = `{
	"frames": {
		"paku_blue_1_walk0002": {"frame": {"x": 32, "y": 0, "w": 32, "h": 32}},
		"paku_blue_1_walk0001": {"frame": {"x": 0, "y": 0, "w": 32, "h": 32}}
	},
	"meta": {"image": "blue.png"}
}`

const redAtlasJSON = `{
	"frames": {
		"paku_red_1_walk0001": {"frame": {"x": 0, "y": 0, "w": 32, "h": 32}}
	},
	"meta": {"image": "red.png"}
}`

func writeAtlas(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAtlas(t *testing.T) {
	path := writeAtlas(t, t.TempDir(), "blue.json", blueAtlasJSON)

	atlas, err := LoadAtlas(path)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Image != "blue.png" {
		t.Errorf("Image = %q, want blue.png", atlas.Image)
	}
	want := []string{"paku_blue_1_walk0001", "paku_blue_1_walk0002"}
	if !reflect.DeepEqual(atlas.FrameNames, want) {
		t.Errorf("FrameNames = %v, want %v", atlas.FrameNames, want)
	}
}

func TestLoadAtlasRejectsBadShape(t *testing.T) {
	dir := t.TempDir()

	for name, content := range map[string]string{
		"frames_array.json": `{"frames": ["a", "b"]}`,
		"no_frames.json":    `{"meta": {"image": "x.png"}}`,
		"empty_frames.json": `{"frames": {}}`,
		"not_json.json":     `paku`,
	} {
		path := writeAtlas(t, dir, name, content)
		if _, err := LoadAtlas(path); err == nil {
			t.Errorf("LoadAtlas accepted %s", name)
		}
	}
}

func TestLoadAtlasDirMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeAtlas(t, dir, "blue.json", blueAtlasJSON)
	writeAtlas(t, dir, "red.json", redAtlasJSON)

	names, err := LoadAtlasDir(dir)
	if err != nil {
		t.Fatalf("LoadAtlasDir: %v", err)
	}
	want := []string{"paku_blue_1_walk0001", "paku_blue_1_walk0002", "paku_red_1_walk0001"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Merged names = %v, want %v", names, want)
	}
}

func TestLoadAtlasDirPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeAtlas(t, dir, "bad.json", `{"frames": {}}`)

	if _, err := LoadAtlasDir(dir); err == nil {
		t.Error("LoadAtlasDir ignored a malformed atlas")
	}
}
