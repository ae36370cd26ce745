package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/combat"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/config"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/db"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/loot"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/persist"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/progress"
)

const EngineConfigPath = "config/engine.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := EngineConfigPath
	if p := os.Getenv("EXILE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("exile-manager engine starting", "log_level", cfg.LogLevel)

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := loot.NewGenerator(rng, cfg.LevelCap)
	ctrl := progress.New(nil, gen, store, rng)

	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("loading saved state: %w", err)
	}
	ctrl.SetExperiencePerLevel(cfg.ExperiencePerLevel)
	if ctrl.State().Character == nil {
		// Fresh run: the configured salvage policy seeds the state; a
		// loaded save keeps whatever the player last set.
		ctrl.InitCharacter(data.ClassReaver)
		if err := ctrl.SetAutoSalvage(cfg.AutoSalvage, cfg.SalvageTierThreshold); err != nil {
			return fmt.Errorf("applying config: %w", err)
		}
	}

	// The whole simulation mutates inside one goroutine; the character
	// aggregate never sees concurrent writers.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return simulate(ctx, ctrl, cfg, rng)
	})
	return g.Wait()
}

// simulate drives a demo expedition loop: ticks, incoming hits,
// experience, loot and periodic autosaves until the context is cancelled.
func simulate(ctx context.Context, ctrl *progress.Controller, cfg config.Engine, rng *rand.Rand) error {
	areas := data.AllAreas()
	if len(areas) == 0 {
		return fmt.Errorf("no areas authored")
	}

	tick := time.NewTicker(cfg.TickInterval)
	defer tick.Stop()
	autosave := time.NewTicker(cfg.AutosaveInterval)
	defer autosave.Stop()

	turn := 0
	for {
		select {
		case <-ctx.Done():
			ctrl.Save(context.Background())
			slog.Info("state saved on shutdown")
			return nil

		case <-autosave.C:
			ctrl.Save(ctx)

		case <-tick.C:
			turn++
			if err := ctrl.Tick(); err != nil {
				return fmt.Errorf("tick %d: %w", turn, err)
			}

			area := currentArea(areas, ctrl)
			snap, err := ctrl.Snapshot()
			if err != nil {
				return fmt.Errorf("resolving stats: %w", err)
			}

			// Area mobs are untiered, so the tier multiplier stays neutral.
			hit := combat.BaseDamageRoll(rng, area.AreaMultiplier, 1.0, area.DifficultyMultiplier)
			if rng.Intn(100) >= snap.Mitigation.Evasion {
				dead, err := ctrl.ApplyDamage(hit)
				if err != nil {
					return fmt.Errorf("applying damage: %w", err)
				}
				if dead {
					slog.Info("character fell", "area", area.Name, "turn", turn)
					ctrl.InitCharacter(data.ClassReaver)
					continue
				}
			}

			if err := ctrl.GainExperience(area.BaseExperience, area.Level); err != nil {
				return fmt.Errorf("granting experience: %w", err)
			}
			res, err := ctrl.AddLoot(1, area.Level, area.DifficultyMultiplier,
				ctrl.State().AutoSalvage.Enabled, area.LootTags)
			if err != nil {
				return fmt.Errorf("granting loot: %w", err)
			}

			slog.Debug("turn complete",
				"turn", turn,
				"area", area.Name,
				"level", ctrl.State().Character.Level,
				"hit_taken", hit,
				"total_damage", snap.TotalDamage,
				"loot_added", res.Added,
				"gold", res.Gold)
		}
	}
}

// currentArea picks the highest area the character's level reaches.
func currentArea(areas []data.Area, ctrl *progress.Controller) data.Area {
	level := ctrl.State().Character.Level
	best := areas[0]
	for _, a := range areas {
		if a.Level <= level+2 {
			best = a
		}
	}
	return best
}

func buildStore(ctx context.Context, cfg config.Engine) (persist.Store, func(), error) {
	if !cfg.Database.Enabled() {
		slog.Info("no database configured, using in-memory store")
		return persist.NewMemoryStore(), func() {}, nil
	}

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Info("database connected", "slot", cfg.SaveSlot)
	return db.NewSaveStore(database, cfg.SaveSlot), database.Close, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
