package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"visionserver/internal/model"
	"visionserver/internal/repository/sqlite"

	"github.com/alecthomas/kong"
)

// CLI prepares a file-backed activity journal and compacts it.
type CLI struct {
	DB   string `default:"data/journal.db" help:"Journal database path"`
	Keep int    `default:"0" help:"Keep only the newest N events (0 keeps everything)"`
}

func main() {
	var c CLI
	kong.Parse(&c,
		kong.Name("migrate"),
		kong.Description("Create or compact the activity journal database"),
		kong.UsageOnError(),
	)

	fmt.Printf("Migrating journal database %s\n", c.DB)

	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(c.DB), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	// Opening the database applies the schema
	db, err := sqlite.New(c.DB)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := sqlite.NewEventRepository(db)

	if c.Keep > 0 {
		before, err := repo.Count()
		if err != nil {
			log.Fatalf("Failed to count events: %v", err)
		}
		if err := repo.Prune(c.Keep); err != nil {
			log.Fatalf("Failed to prune events: %v", err)
		}
		after, _ := repo.Count()
		fmt.Printf("✂️  Pruned %d events, %d kept\n", before-after, after)
	}

	fmt.Printf("✅ Journal schema is up to date\n")

	// Show stats
	counts, err := repo.CountByType()
	if err != nil {
		log.Printf("⚠️  Failed to read statistics: %v", err)
		return
	}

	types := make([]model.EventType, 0, len(counts))
	var total int64
	for typ, count := range counts {
		types = append(types, typ)
		total += count
	}
	slices.Sort(types)

	fmt.Printf("\n📊 Journal Statistics:\n")
	fmt.Printf("   Total events: %d\n", total)
	for _, typ := range types {
		fmt.Printf("      - %s: %d\n", typ, counts[typ])
	}
}
