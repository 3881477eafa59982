package seeders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/config"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

// BuildDataset assembles the initial dataset: the fixtures file when one is
// configured, the demo data otherwise, then the equipment of the XLSX import
// merged in by tag.
func BuildDataset(ctx context.Context, cfg config.SeedConfig, now time.Time, logger *zap.Logger) (repositories.Snapshot, error) {
	var (
		snap repositories.Snapshot
		err  error
	)
	if cfg.FixturesPath != "" {
		logger.Info("seeding from fixtures", zap.String("path", cfg.FixturesPath))
		if snap, err = LoadFixturesFile(cfg.FixturesPath); err != nil {
			return snap, err
		}
	} else {
		hash, err := utils.HashPassword(DefaultPassword)
		if err != nil {
			return snap, fmt.Errorf("hash default password: %w", err)
		}
		snap = DefaultData(hash)
	}

	if err := ctx.Err(); err != nil {
		return snap, err
	}

	if cfg.EquipmentXLSX != "" {
		res, err := NewEquipmentImporter(snap.Units, now, logger).ImportFile(cfg.EquipmentXLSX)
		if err != nil {
			return snap, err
		}
		added, updated := mergeEquipments(&snap, res.Equipments)
		logger.Info("equipment spreadsheet imported",
			zap.String("path", cfg.EquipmentXLSX),
			zap.Int("added", added),
			zap.Int("updated", updated),
			zap.Int("skipped", res.Skipped),
		)
	}
	return snap, nil
}

// Seed loads the initial dataset into storage when seeding is enabled.
func Seed(ctx context.Context, storage *repositories.Storage, cfg config.SeedConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Info("seeding disabled, starting with an empty store")
		return nil
	}
	snap, err := BuildDataset(ctx, cfg, storage.Now(), logger)
	if err != nil {
		return err
	}
	storage.Load(snap)
	logger.Info("store seeded",
		zap.Int("units", len(snap.Units)),
		zap.Int("equipments", len(snap.Equipments)),
		zap.Int("calls", len(snap.Calls)),
		zap.Int("checklists", len(snap.Checklists)),
		zap.Int("users", len(snap.Users)),
	)
	return nil
}

// mergeEquipments updates the equipment with the same tag and appends the rest
// with ids derived from their tags.
func mergeEquipments(snap *repositories.Snapshot, imported []entities.Equipment) (added, updated int) {
	byTag := make(map[string]int, len(snap.Equipments))
	for i, e := range snap.Equipments {
		byTag[strings.ToUpper(e.Tag)] = i
	}
	for _, e := range imported {
		if i, ok := byTag[e.Tag]; ok {
			e.ID = snap.Equipments[i].ID
			snap.Equipments[i] = e
			updated++
			continue
		}
		e.ID = "EQ-" + e.Tag
		byTag[e.Tag] = len(snap.Equipments)
		snap.Equipments = append(snap.Equipments, e)
		added++
	}
	return added, updated
}
