package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Pyrite7/terminal-draw/internal/config"
	"github.com/Pyrite7/terminal-draw/internal/render"
	"github.com/charmbracelet/colorprofile"
)

func main() {
	sceneFile := flag.String("scene", "", "scene file to paint (default: scene.toml in the config directory)")
	themeName := flag.String("theme", "", "theme in <config dir>/themes/<name>.toml layered over the scene theme")
	noColor := flag.Bool("no-color", false, "paint attributes only, without colours")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nPaints a scene onto the terminal.\nConfig directory: %s\n\n", os.Args[0], config.GetConfigDir())
		flag.PrintDefaults()
	}
	flag.Parse()

	scene, err := loadScene(*sceneFile)
	if err != nil {
		log.Fatalf("termdraw: %v", err)
	}
	if err := applyTheme(scene, *themeName); err != nil {
		log.Fatalf("termdraw: %v", err)
	}

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	if *noColor {
		profile = colorprofile.Ascii
	}

	out := bufio.NewWriter(os.Stdout)
	if err := paintScene(out, render.NewRenderer(out, profile), scene); err != nil {
		log.Fatalf("termdraw: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("termdraw: flush: %v", err)
	}
}

func loadScene(name string) (*config.Scene, error) {
	if name == "" {
		return config.LoadUserScene()
	}
	return config.LoadSceneFile(name)
}
