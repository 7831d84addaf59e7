package pacanim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// atlasSchema checks the shape of a spritesheet description before any
// frame names are trusted.
const atlasSchema = `{
	"type": "object",
	"required": ["frames"],
	"properties": {
		"frames": {
			"type": "object",
			"minProperties": 1,
			"additionalProperties": {"type": "object"}
		},
		"meta": {
			"type": "object",
			"properties": {
				"image": {"type": "string"}
			}
		}
	}
}`

var compiledAtlasSchema = jsonschema.MustCompileString("atlas.schema.json", atlasSchema)

// Atlas is the part of a spritesheet description the animation system
// cares about: the texture name and its frame identifiers.
type Atlas struct {
	Image      string
	FrameNames []string
}

type atlasFile struct {
	Frames map[string]json.RawMessage `json:"frames"`
	Meta   struct {
		Image string `json:"image"`
	} `json:"meta"`
}

// LoadAtlas loads one TexturePacker-style atlas JSON file.
func LoadAtlas(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := compiledAtlasSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var file atlasFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	names := make([]string, 0, len(file.Frames))
	for name := range file.Frames {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Atlas{Image: file.Meta.Image, FrameNames: names}, nil
}

// LoadAtlasDir loads every atlas in a directory and merges the frame names.
// It is assumed that each color has its own atlas file (blue.json, red.json).
func LoadAtlasDir(dir string) ([]string, error) {
	atlasFiles, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(atlasFiles)

	var frameNames []string
	for _, file := range atlasFiles {
		atlas, err := LoadAtlas(file)
		if err != nil {
			return nil, err
		}
		frameNames = append(frameNames, atlas.FrameNames...)
	}

	return frameNames, nil
}
