package config

import (
	"fmt"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX stages
const (
	groupSpawn        = "spawn"
	groupPlatforms    = "platforms"
	groupCollectibles = "collectibles"
	groupJumpboosts   = "jumpboosts"
	groupPowers       = "powers"
	groupEnemies      = "enemies"
)

// loadTMXStage builds a stage from a Tiled map. Each kind lives in an
// object group named after it; pickups read an integer "value" property.
func (l *Loader) loadTMXStage(p string) (*StageConfig, error) {
	levelMap, err := tiled.LoadFile(p, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", p, err)
	}

	cfg := &StageConfig{
		ID: stageID(p),
		Size: StageSizeConfig{
			Width:  levelMap.Width * levelMap.TileWidth,
			Height: levelMap.Height * levelMap.TileHeight,
		},
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			rect := RectConfig{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case groupSpawn:
				cfg.PlayerSpawn = &PositionConfig{X: o.X, Y: o.Y}
			case groupPlatforms:
				cfg.Platforms = append(cfg.Platforms, rect)
			case groupCollectibles:
				cfg.Collectibles = append(cfg.Collectibles, PickupConfig{RectConfig: rect, Value: o.Properties.GetInt("value")})
			case groupJumpboosts:
				cfg.Jumpboosts = append(cfg.Jumpboosts, rect)
			case groupPowers:
				cfg.Powers = append(cfg.Powers, PickupConfig{RectConfig: rect, Value: o.Properties.GetInt("value")})
			case groupEnemies:
				cfg.Enemies = append(cfg.Enemies, rect)
			}
		}
	}
	cfg.normalize()

	return cfg, nil
}
