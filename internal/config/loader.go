package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default/*.toml
var configFS embed.FS

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("TERMDRAW_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "scene.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		xdgConfigDir := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "termdraw", "scene.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "termdraw", "scene.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

// DefaultScene returns the scene shipped with the binary.
func DefaultScene() (*Scene, error) {
	data, err := configFS.ReadFile("default/scene.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default scene found: %w", err)
	}
	scene, err := LoadScene(data)
	if err != nil {
		return nil, fmt.Errorf("embedded default scene: %w", err)
	}
	return scene, nil
}

// LoadScene decodes and validates a scene. Theme entries extend the embedded
// default theme; keys the scene format does not know are rejected.
func LoadScene(data []byte) (*Scene, error) {
	base, err := LoadEmbeddedTheme("theme")
	if err != nil {
		return nil, err
	}

	scene := &Scene{}
	metadata, err := toml.Decode(string(data), scene)
	if err != nil {
		return nil, err
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	theme := make(map[string]Color, len(base)+len(scene.Theme))
	for key, color := range base {
		theme[key] = color
	}
	if metadata.IsDefined("theme") {
		for key, color := range scene.Theme {
			theme[key] = color
		}
	}
	scene.Theme = theme

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

func LoadSceneFile(name string) (*Scene, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	scene, err := LoadScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return scene, nil
}

// LoadUserScene loads scene.toml from the config directory, falling back to
// the embedded default scene when the file does not exist.
func LoadUserScene() (*Scene, error) {
	configFile := getConfigFilePath()
	if configFile == "" {
		return DefaultScene()
	}
	scene, err := LoadSceneFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultScene()
	}
	return scene, err
}

func loadTheme(data []byte, base map[string]Color) (map[string]Color, error) {
	colors := make(map[string]Color)
	for key, color := range base {
		colors[key] = color
	}
	err := toml.Unmarshal(data, &colors)
	if err != nil {
		return nil, err
	}
	return colors, nil
}

func LoadEmbeddedTheme(name string) (map[string]Color, error) {
	embeddedPath := "default/" + name + ".toml"
	data, err := configFS.ReadFile(embeddedPath)
	if err != nil {
		return nil, err
	}
	return loadTheme(data, nil)
}

// LoadTheme reads themes/<name>.toml from the config directory on top of base.
func LoadTheme(name string, base map[string]Color) (map[string]Color, error) {
	configFilePath := getConfigFilePath()
	themeFile := filepath.Join(filepath.Dir(configFilePath), "themes", name+".toml")

	data, err := os.ReadFile(themeFile)
	if err != nil {
		return nil, err
	}
	return loadTheme(data, base)
}
