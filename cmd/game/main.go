package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hopper/internal/application/game"
	"github.com/younwookim/hopper/internal/application/replay"
	"github.com/younwookim/hopper/internal/application/scene"
	"github.com/younwookim/hopper/internal/application/scene/playing"
	"github.com/younwookim/hopper/internal/application/scene/result"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir string
	stage     string
	record    string
	replay    string
	watch     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: built-in configs)")
	flag.StringVar(&opts.stage, "stage", "level1", "Stage to play")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recorded input file")
	flag.BoolVar(&opts.watch, "watch", false, "Reload tuning.yaml on change (needs -config)")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}

	var replayer *replay.Replayer
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		replayer = replay.NewReplayer(*data)
		if replayer.Stage() != "" {
			opts.stage = replayer.Stage()
		}
	}

	cfg, err := loader.LoadAll(opts.stage)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if replayer != nil && replayer.Framerate() > 0 {
		cfg.Tuning.Display.Framerate = replayer.Framerate()
	}

	var tuning <-chan *config.TuningConfig
	if opts.watch {
		if opts.configDir == "" {
			return fmt.Errorf("-watch needs -config")
		}
		watcher, err := config.NewWatcher(loader)
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors {
				log.Printf("Config reload failed: %v", err)
			}
		}()
		tuning = watcher.Tuning
		log.Printf("Watching %s for tuning changes", loader.BasePath())
	}

	display := cfg.Tuning.Display
	g := game.New(newSession(cfg, opts.record, 1, replayer, tuning), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Hopper")
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}

// newLoader reads configs from dir, or from the built-in copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newSession builds the n-th playing scene of a run. Live sessions go to
// the result scene on a win or a loss, which restarts into a fresh
// session; replays keep playing until their input runs out.
func newSession(cfg *config.GameConfig, recordPath string, n int, replayer *replay.Replayer, tuning <-chan *config.TuningConfig) scene.Scene {
	opts := playing.Options{
		RecordPath: sessionRecordPath(recordPath, n),
		Replay:     replayer,
		Tuning:     tuning,
	}
	if replayer == nil {
		display := cfg.Tuning.Display
		opts.Next = func(outcome state.Outcome) scene.Scene {
			return result.New(outcome, display.ScreenWidth, display.ScreenHeight, func() scene.Scene {
				return newSession(cfg, recordPath, n+1, nil, tuning)
			})
		}
	}
	return playing.New(cfg, opts)
}

// sessionRecordPath keeps the first session's recording at path and
// numbers later ones before the extension: run.json, run_2.json, ...
func sessionRecordPath(path string, n int) string {
	if path == "" || n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), n, ext)
}
