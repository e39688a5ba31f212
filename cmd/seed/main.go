// Command seed loads knowledge entries from a CSV file into the database.
// It plays the ingestion collaborator role: the serving process only reads
// what this command writes.
//
// Expected CSV columns: question, answer, keywords (semicolon separated).
// The first row is treated as a header and skipped.
//
// Usage: seed -file entries.csv -product Municipal
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"tritech-assistant/internal/models"
	"tritech-assistant/internal/repository"
	"tritech-assistant/pkg/config"
	"tritech-assistant/pkg/logger"
	"tritech-assistant/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS knowledge_entries (
	id UUID PRIMARY KEY,
	product TEXT NOT NULL,
	question TEXT NOT NULL,
	answer TEXT NOT NULL,
	keywords TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func main() {
	filePath := flag.String("file", "", "path to the CSV file")
	product := flag.String("product", string(models.ProductPremiumTax), "product the entries belong to")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Usage: seed -file entries.csv -product <product>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		appLogger.Fatal("Failed to ensure knowledge_entries table", zap.Error(err))
	}

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	count, err := seedFromCSV(ctx, *filePath, models.Product(*product), knowledgeRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}

	appLogger.Info("Seeding completed", zap.Int("entries", count))
}

func seedFromCSV(
	ctx context.Context,
	filePath string,
	product models.Product,
	repo *repository.KnowledgeRepository,
	appLogger *zap.Logger,
) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	now := time.Now()
	inserted := 0
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, err
		}

		line++
		if line == 1 {
			// header row
			continue
		}
		if len(record) < 2 {
			appLogger.Warn("Skipping malformed row", zap.Int("line", line))
			continue
		}

		question := strings.TrimSpace(record[0])
		answer := strings.TrimSpace(record[1])
		if question == "" || answer == "" {
			appLogger.Warn("Skipping row with empty question or answer", zap.Int("line", line))
			continue
		}

		var keywords []string
		if len(record) > 2 {
			for _, kw := range strings.Split(record[2], ";") {
				if kw = strings.TrimSpace(kw); kw != "" {
					keywords = append(keywords, kw)
				}
			}
		}

		entry := &models.KnowledgeEntry{
			ID:        uuid.New(),
			Product:   product,
			Question:  question,
			Answer:    answer,
			Keywords:  keywords,
			CreatedAt: now,
		}

		if err := repo.Create(ctx, entry); err != nil {
			appLogger.Error("Failed to insert entry",
				zap.Int("line", line),
				zap.String("question", question),
				zap.Error(err),
			)
			continue
		}
		inserted++
	}

	return inserted, nil
}
