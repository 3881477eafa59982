package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"gym-maintenance/pkg/config"
	"gym-maintenance/pkg/logger"
	"gym-maintenance/seeders"

	"go.uber.org/zap"
)

func main() {
	dump := flag.String("dump", "", "Grava o conjunto de dados inicial como fixtures YAML neste arquivo")
	check := flag.Bool("check", false, "Valida as fontes de seed configuradas e mostra os totais")
	flag.Parse()

	if *dump == "" && !*check {
		log.Println("Nenhuma operação selecionada.")
		log.Println("")
		log.Println("Flags disponíveis:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplos:")
		log.Println("  go run ./seeders/cmd/seed -check")
		log.Println("  go run ./seeders/cmd/seed -dump fixtures.yaml")
		return
	}

	cfg := config.MustLoad()
	appLogger, err := logger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("cannot create logger: %v", err)
	}
	defer appLogger.Sync()

	snap, err := seeders.BuildDataset(context.Background(), cfg.Seed, time.Now(), appLogger)
	if err != nil {
		appLogger.Fatal("seed sources are invalid", zap.Error(err))
	}

	if *check {
		appLogger.Info("seed sources are valid",
			zap.Int("units", len(snap.Units)),
			zap.Int("equipments", len(snap.Equipments)),
			zap.Int("calls", len(snap.Calls)),
			zap.Int("checklists", len(snap.Checklists)),
			zap.Int("users", len(snap.Users)),
		)
	}

	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			appLogger.Fatal("cannot create fixtures file", zap.String("path", *dump), zap.Error(err))
		}
		defer f.Close()
		if err := seeders.WriteFixtures(f, snap); err != nil {
			appLogger.Fatal("cannot write fixtures", zap.Error(err))
		}
		appLogger.Info("fixtures written", zap.String("path", *dump))
	}
}
