package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/pixel-platformer/assets"
	"github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/fonts"
	"github.com/automoto/pixel-platformer/levels"
	"github.com/automoto/pixel-platformer/scenes"
	"github.com/automoto/pixel-platformer/shared/leveldata"
	"github.com/automoto/pixel-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

type Editor struct {
	scene scenes.Scene
}

func (e *Editor) Update() error {
	return e.scene.Update()
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.scene.Draw(screen)
}

func (e *Editor) Layout(width, height int) (int, int) {
	return config.Editor.Width, config.Editor.Height
}

func main() {
	assetsDir := flag.String("assets", config.Assets.Dir, "Directory holding the Sprites and Sounds folders")
	levelsPath := flag.String("levels", levels.DefaultFile, "Level file new levels are appended to")
	load := flag.Int("load", -1, "Open a copy of this level index (-1 = empty level)")
	tmxPath := flag.String("tmx", "", "Open a copy of the first tile layer of a Tiled map")
	flag.Parse()

	fsys := os.DirFS(*assetsDir)
	catalog, err := assets.LoadCatalog(fsys)
	if err != nil {
		log.Fatalf("Failed to load tile catalog from %s: %v", *assetsDir, err)
	}

	var grid leveldata.Grid
	switch {
	case *tmxPath != "":
		dir, name := filepath.Split(*tmxPath)
		if dir == "" {
			dir = "."
		}
		grid, err = leveldata.LoadTMX(os.DirFS(dir), name)
		if err != nil {
			log.Fatalf("Failed to import map: %v", err)
		}
	case *load >= 0:
		grid, err = loadLevel(*levelsPath, *load)
		if err != nil {
			log.Fatalf("Failed to load level %d: %v", *load, err)
		}
	}
	if grid != nil {
		if err := grid.Validate(config.World.Rows, config.World.Cols, catalog.Len()); err != nil {
			log.Fatalf("Cannot edit level: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	systems.InitAudio(fsys)

	palette := assets.Thumbnails(catalog, config.Editor.CellSize, draw.ApproxBiLinear)
	log.Printf("Editing with %d tiles, saving to %s", len(palette), *levelsPath)

	ebiten.SetWindowSize(config.Editor.Width, config.Editor.Height)
	ebiten.SetWindowTitle(config.C.Title + " - Map Maker")
	ebiten.SetTPS(config.World.TickRate)
	ebiten.SetWindowClosingHandled(true)

	e := &Editor{scene: scenes.NewEditorScene(grid, palette, *levelsPath)}
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadLevel returns level index from the file at path, falling back to the
// bundled levels when the file does not exist yet.
func loadLevel(path string, index int) (leveldata.Grid, error) {
	f, err := leveldata.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f, err = levels.Default()
	}
	if err != nil {
		return nil, err
	}
	if index >= len(f.Levels) {
		return nil, fmt.Errorf("%s has %d levels", path, len(f.Levels))
	}
	log.Printf("Opened a copy of %s", f.Levels[index].Name)
	return f.Levels[index].Grid, nil
}
