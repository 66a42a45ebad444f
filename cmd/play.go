package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/8bitgaijin/Learniverse-sub001/internal/app"
	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
	"github.com/8bitgaijin/Learniverse-sub001/internal/leveling"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screens/intro"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screens/menu"
	"github.com/8bitgaijin/Learniverse-sub001/internal/session"
	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the daily lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.SeedLessons(ctx, lessonSeeds()); err != nil {
		return fmt.Errorf("seed lessons: %w", err)
	}

	contentDir := resolveContentDir(cmd)
	lib := loadLibrary(contentDir)

	engine := leveling.NewEngine(st)

	cfg := menu.Config{
		Store: st,
		NewOrchestrator: func() *session.Orchestrator {
			return session.New(st, engine, lib)
		},
		DBPath:     dbPath,
		ContentDir: contentDir,
		Version:    version,
	}

	return app.Run(intro.New(func() screen.Screen {
		return menu.New(cfg)
	}))
}

// lessonSeeds maps the built-in lesson catalogue to store seed rows.
func lessonSeeds() []store.LessonSeed {
	var seeds []store.LessonSeed
	for _, l := range content.SeedLessons() {
		seeds = append(seeds, store.LessonSeed{
			Title:       l.Title,
			Description: l.Description,
		})
	}
	return seeds
}

// loadLibrary builds the content library: built-in defaults, then any
// YAML packs from the content directory layered on top. A broken pack
// is skipped with a warning rather than blocking the lesson.
func loadLibrary(dir string) *content.Library {
	lib := content.NewLibrary()
	if dir == "" {
		return lib
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: content dir not read: %v\n", err)
		return lib
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := lib.LoadPack(filepath.Join(dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: pack %s skipped: %v\n", name, err)
		}
	}
	return lib
}
