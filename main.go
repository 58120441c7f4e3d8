package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/pixel-platformer/assets"
	"github.com/automoto/pixel-platformer/config"
	"github.com/automoto/pixel-platformer/core"
	"github.com/automoto/pixel-platformer/fonts"
	"github.com/automoto/pixel-platformer/levels"
	"github.com/automoto/pixel-platformer/scenes"
	"github.com/automoto/pixel-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	assetsDir := flag.String("assets", config.Assets.Dir, "Directory holding the Sprites and Sounds folders")
	levelsPath := flag.String("levels", "", "Level file to play (empty = bundled levels)")
	rulesPath := flag.String("tiles-rules", "", "YAML file overriding the solid and special tile ids")
	startLevel := flag.Int("level", 0, "Level index to start at")
	resume := flag.Bool("continue", false, "Start at the highest level reached in a previous run")
	flag.Parse()

	rules := config.Tiles
	if *rulesPath != "" {
		r, err := config.LoadTileRulesFile(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load tile rules: %v", err)
		}
		rules = r
	}

	fsys := os.DirFS(*assetsDir)
	catalog, err := assets.LoadCatalog(fsys)
	if err != nil {
		log.Fatalf("Failed to load tile catalog from %s: %v", *assetsDir, err)
	}

	levelFile, err := levels.Load(*levelsPath)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	controller, err := core.NewLevelController(levelFile.Grids(), catalog, rules, config.World, config.Player)
	if err != nil {
		log.Fatalf("Invalid levels: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved progress
	reached := 0
	if err := systems.InitPersistence("pixel-platformer"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved := systems.LoadProgress(); saved != nil {
		reached = saved.Reached
	}
	if *resume {
		*startLevel = min(reached, controller.LevelCount()-1)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.World.TickRate)

	art := assets.LoadArt(fsys, catalog, int(config.World.TileSize))
	systems.InitAudio(fsys)
	systems.PlayMusic(config.Sound.BackgroundMusic)

	log.Printf("Loaded %d levels and %d tiles", controller.LevelCount(), catalog.Len())

	g := &Game{
		scene: scenes.NewPlatformerScene(controller, art, *startLevel, reached),
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
