package main

import (
	"flag"
	"fmt" // For initial error printing before logger is up
	"io"
	"math/rand"
	"os"
	"time"

	"quiz-forge/internal/config"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/generator"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"

	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "", "Path to the source text file (reads stdin when omitted)")
	topic := flag.String("topic", "", "Optional topic label for the assignments")
	title := flag.String("title", "", "Title of the rendered study sheet")
	outPath := flag.String("out", "", "Output file path (writes stdout when omitted)")
	seed := flag.Int64("seed", 0, "Random seed; 0 seeds from the current time")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Study sheet generation starting...")

	var text []byte
	if *filePath != "" {
		text, err = os.ReadFile(*filePath)
		if err != nil {
			logger.Get().Fatal("Failed to read source file", zap.String("file", *filePath), zap.Error(err))
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Get().Fatal("Failed to read stdin", zap.Error(err))
		}
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	engine := generator.NewEngine(rand.New(rand.NewSource(rngSeed)))
	generationService := service.NewGenerationService(engine)

	sheet, err := generationService.ExportStudySheet(&dto.ExportRequest{
		Text:  string(text),
		Topic: *topic,
		Title: *title,
	})
	if err != nil {
		logger.Get().Fatal("Failed to generate study sheet", zap.Error(err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(sheet), 0o644); err != nil {
			logger.Get().Fatal("Failed to write study sheet", zap.String("out", *outPath), zap.Error(err))
		}
		logger.Get().Info("Study sheet written", zap.String("out", *outPath))
	} else {
		fmt.Print(sheet)
	}
}
