// Command tipjarz-seed loads demo data into the Supabase store: a
// creator profile, a few confirmed tips, and one gated content record.
// Useful for local frontend development against a fresh project.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tipjarz/tipjarz/internal/database"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

func main() {
	var (
		envFile   = flag.String("env", ".env", "Path to .env with SUPABASE_URL and SUPABASE_SERVICE_KEY")
		creatorID = flag.String("creator", "demo-creator", "Creator ID to seed")
	)
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("load env (%s): %v", *envFile, err)
	}

	url := os.Getenv("SUPABASE_URL")
	serviceKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if url == "" || serviceKey == "" {
		log.Fatal("SUPABASE_URL and SUPABASE_SERVICE_KEY are required")
	}

	client, err := database.NewClient(database.Config{URL: url, ServiceKey: serviceKey})
	if err != nil {
		log.Fatalf("database client: %v", err)
	}
	repo := tipjarsupabase.NewRepository(database.NewRepository(client))

	ctx := context.Background()
	if err := seed(ctx, repo, *creatorID); err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Printf("seeded demo data for creator %s\n", *creatorID)
}

func seed(ctx context.Context, repo *tipjarsupabase.Repository, creatorID string) error {
	creator := &tipjarsupabase.Creator{
		CreatorID:     creatorID,
		WalletAddress: "0x1234567890123456789012345678901234567890",
		Name:          "Demo Creator",
		Bio:           "Seeded profile for local development.",
		Content:       "Weekly sketches and process notes.",
	}
	if err := repo.CreateCreator(ctx, creator); err != nil {
		return fmt.Errorf("create creator: %w", err)
	}

	now := time.Now().UTC()
	tips := []tipjarsupabase.Tip{
		{
			TipID:         fmt.Sprintf("tip_%d_seed1", now.UnixMilli()),
			CreatorID:     creatorID,
			TipperAddress: "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
			Amount:        "0.004",
			Currency:      "ETH",
			Message:       "love the sketches",
			Status:        tipjarsupabase.TipStatusConfirmed,
			Timestamp:     now.Add(-48 * time.Hour),
		},
		{
			TipID:         fmt.Sprintf("tip_%d_seed2", now.UnixMilli()),
			CreatorID:     creatorID,
			TipperAddress: "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
			Amount:        "0.006",
			Currency:      "ETH",
			Status:        tipjarsupabase.TipStatusConfirmed,
			Timestamp:     now.Add(-24 * time.Hour),
		},
	}
	for i := range tips {
		if err := repo.CreateTip(ctx, &tips[i]); err != nil {
			return fmt.Errorf("create tip %s: %w", tips[i].TipID, err)
		}
	}

	content := &tipjarsupabase.GatedContent{
		ContentID:     fmt.Sprintf("content_%d_seed", now.UnixMilli()),
		CreatorID:     creatorID,
		Title:         "Bonus process video",
		Description:   "Behind-the-scenes recording of this week's piece.",
		SecretContent: "https://example.com/secret-video",
		MinTipAmount:  "0.01",
	}
	if err := repo.CreateGatedContent(ctx, content); err != nil {
		return fmt.Errorf("create gated content: %w", err)
	}

	return nil
}
