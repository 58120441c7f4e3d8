package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"github.com/lafriks/go-tiled"
)

var levelNamePattern = regexp.MustCompile(`^level_(\d+)$`)

// Load decodes a level file.
func Load(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	return &f, nil
}

// LoadFS reads a level file from fsys. It takes an fs.FS so callers can pass
// embed.FS (bundled levels) or os.DirFS (user levels).
func LoadFS(fsys fs.FS, path string) (*File, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read levels %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels %s: %w", path, err)
	}
	return &f, nil
}

// LoadFile reads a level file from disk.
func LoadFile(path string) (*File, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name)
}

// NextName returns the next free "level_N" name, one past the highest
// existing number.
func (f *File) NextName() string {
	next := 1
	for _, l := range f.Levels {
		m := levelNamePattern.FindStringSubmatch(l.Name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= next {
			next = n + 1
		}
	}
	return fmt.Sprintf("level_%d", next)
}

// Append adds a copy of grid as a new named level and returns the entry.
func (f *File) Append(grid Grid) Level {
	level := Level{
		ID:   uuid.New(),
		Name: f.NextName(),
		Grid: grid.Clone(),
	}
	f.Levels = append(f.Levels, level)
	return level
}

// Save encodes the file as indented JSON.
func (f *File) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode levels: %w", err)
	}
	return nil
}

// SaveFile writes the file to path, replacing it only once the new contents
// are fully written.
func SaveFile(path string, f *File) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".levels-*.json")
	if err != nil {
		return fmt.Errorf("create temp level file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := f.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp level file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// AppendToFile loads path (starting empty if it does not exist), appends grid
// as a new level and writes the result back.
func AppendToFile(path string, grid Grid) (Level, error) {
	f, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f, err = &File{}, nil
	}
	if err != nil {
		return Level{}, err
	}

	level := f.Append(grid)
	if err := SaveFile(path, f); err != nil {
		return Level{}, err
	}
	return level, nil
}

// LoadTMX imports the first tile layer of a Tiled map as a grid. Each cell's
// id is its global tile id (tileset first gid + local id), which matches the
// catalog numbering when the map uses a single tileset built from the same
// sorted tile directory.
func LoadTMX(fsys fs.FS, tmxPath string) (Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no tile layers", tmxPath)
	}

	layer := levelMap.Layers[0]
	grid := NewGrid(levelMap.Height, levelMap.Width)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			grid[y][x] = int(tile.Tileset.FirstGID + tile.ID)
		}
	}
	return grid, nil
}
