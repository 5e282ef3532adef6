package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be rendered by name
type SceneInfo struct {
	Name        string `json:"name"`        // Registry name or file stem
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
	Group       string `json:"group"`    // Grouping category
	Type        string `json:"type"`     // "builtin" or "json"
	FilePath    string `json:"filePath"` // Path to the scene file (json type only)
}

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

type builtin struct {
	info  SceneInfo
	build func() *Scene
}

// builtins lists the code-built scenes in display order
var builtins = []builtin{
	{SceneInfo{Name: "basic", Description: "One diffuse sphere on a ground plane"}, NewBasicScene},
	{SceneInfo{Name: "lambertian", Description: "Gray diffuse sphere resting on a huge sphere"}, NewLambertianScene},
	{SceneInfo{Name: "glass", Description: "Hollow glass sphere, diffuse sphere and gold mirror"}, NewGlassScene},
	{SceneInfo{Name: "random-spheres", Description: "Book cover: hundreds of random small spheres"}, NewRandomSpheresScene},
	{SceneInfo{Name: "smoke", Description: "Red smoke sphere and tilted green smoke cube"}, NewSmokeScene},
	{SceneInfo{Name: "fireflies", Description: "Hazy sphere row lit by a glowing orb and bright particles"}, NewFirefliesScene},
	{SceneInfo{Name: "balloons", Description: "Hazy sphere row under a floating particle cloud"}, NewBalloonsScene},
	{SceneInfo{Name: "cubes", Description: "Nested tilted glass cubes with a metal core"}, NewCubesScene},
	{SceneInfo{Name: "cylinders", Description: "Cylinders, tube, disk and quad on a checkered floor"}, NewCylindersScene},
}

// Names returns the built-in scene names in display order
func Names() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.info.Name
	}
	return names
}

// Builtins returns metadata for every built-in scene
func Builtins() []SceneInfo {
	infos := make([]SceneInfo, len(builtins))
	for i, b := range builtins {
		infos[i] = b.info
		infos[i].DisplayName = titleCase(b.info.Name)
		infos[i].Group = builtinGroup
		infos[i].Type = "builtin"
	}
	return infos
}

// Create builds a scene by name. A name ending in .json is loaded as a scene file.
func Create(name string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return LoadFile(name)
	}
	for _, b := range builtins {
		if b.info.Name == name {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
}

// ListSceneFiles scans dir for JSON scene files.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan scene directory %s: %w", dir, err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		scenes = append(scenes, SceneInfo{
			Name:        stem,
			DisplayName: titleCase(stem),
			Group:       fileGroup,
			Type:        "json",
			FilePath:    filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// titleCase converts a filename-style string to title case
// e.g., "random-spheres" -> "Random Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
