package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the JSON file (json type only)
}

type builtinScene struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "default", DisplayName: "Default Scene", Description: "Matte sphere on a matte ground", Type: "builtin"}, NewDefaultScene},
	{SceneInfo{ID: "materials", DisplayName: "Materials", Description: "Diffuse sphere between fuzzy and rough metal", Type: "builtin"}, NewMaterialsScene},
	{SceneInfo{ID: "glass", DisplayName: "Glass", Description: "Solid glass, hollow glass bubble and polished gold", Type: "builtin"}, NewGlassScene},
	{SceneInfo{ID: "empty", DisplayName: "Empty Sky", Description: "Background gradient only", Type: "builtin"}, NewEmptyScene},
}

// Create builds the scene registered under name, or loads it from disk when name is a .json path
func Create(name string) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return LoadFile(name)
	}
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.factory(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// ListBuiltinScenes returns the scenes compiled into the binary
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}
	return scenes
}

// ListJSONScenes scans dir for *.json scene files. A missing directory yields no scenes.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		scenes = append(scenes, SceneInfo{
			ID:          filePath,
			DisplayName: titleCase(sceneIDFromPath(filePath)),
			Type:        "json",
			FilePath:    filePath,
		})
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ListAllScenes returns built-in scenes first, then the JSON scenes found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	return append(ListBuiltinScenes(), jsonScenes...), nil
}

// sceneIDFromPath strips directory and extension: "scenes/two-spheres.json" -> "two-spheres"
func sceneIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
