// Copyright 2025 Brandloom Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Seeder loads demo brand content into a database for local testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brandloom/brandrag/content"
	"github.com/brandloom/brandrag/storage/badger"
)

var demoSources = []content.Source{
	&content.BrandProfile{
		ID:             "demo-brand",
		Name:           "Fern & Forage",
		Description:    "Small-batch botanical skincare made from foraged Pacific Northwest ingredients.",
		Industry:       "skincare",
		TargetAudience: "eco-conscious millennials",
		Voice:          "warm, earthy, a little irreverent",
		Values:         "sustainability, transparency, small-batch",
		USPs:           "wild-harvested ingredients, compostable packaging",
	},
	&content.SocialPost{
		ID:         "post-001",
		Platform:   "instagram",
		Caption:    "Moss doesn't rush. Neither do we. Our cedar balm cures for six weeks before it touches your skin.",
		Hashtags:   "#slowbeauty, #foraged, #pnw",
		Tone:       "earthy",
		Engagement: 412,
	},
	&content.SocialPost{
		ID:         "post-002",
		Platform:   "instagram",
		Caption:    "POV: you found the one moisturizer that doesn't pretend lab-made is a dirty word.",
		Hashtags:   "#skincare, #honestbeauty",
		Tone:       "irreverent",
		Engagement: 987,
	},
	&content.BlogPost{
		ID:      "blog-001",
		Title:   "What 'wild-harvested' actually means",
		Summary: "A walk through our harvest season, permit paperwork included.",
		Body:    "Every spring we apply for harvest permits across three state forests...",
		Tags:    "sourcing, transparency",
	},
	&content.SavedImage{
		ID:      "img-001",
		Prompt:  "macro photo of dew on cedar needles, soft morning light",
		Style:   "natural, muted greens",
		Caption: "Harvest morning",
	},
	&content.AdCampaign{
		ID:        "camp-001",
		Name:      "Solstice Launch",
		Objective: "awareness",
		Copy:      "The forest made it first. We just bottled it.",
		Platform:  "instagram",
		Audience:  "eco-conscious, 25-40",
	},
}

func main() {
	dbPath := flag.String("db", "", "Path to BadgerDB database directory")
	userID := flag.String("user", "demo-user", "User ID to seed content under")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer backend.Close()

	repo := badger.NewContentRepository(backend)
	defer repo.Close()

	ctx := context.Background()
	for _, src := range demoSources {
		record := content.ToRecord(*userID, src)
		record.CreatedAt = time.Now().UTC()
		if err := repo.PutContent(ctx, record); err != nil {
			log.Fatalf("failed to store %s/%s: %v", record.Type, record.DocID, err)
		}
	}

	fmt.Printf("Seeded %d records for user %s\n", len(demoSources), *userID)
}
