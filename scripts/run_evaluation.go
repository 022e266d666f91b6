package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
	"github.com/kunlundesign/aiuxtester/internal/services"
)

func main() {
	cfg := config.Load()

	var (
		baseURL    = flag.String("server", "http://localhost:"+cfg.Server.Port, "Base URL of the evaluation API")
		model      = flag.String("model", "gemini", "Model provider: openai, gemini, or zhipu")
		personaID  = flag.String("persona", "", "Persona ID to evaluate as (empty runs all built-in personas)")
		background = flag.String("background", "", "Design background context for the evaluation")
		analysis   = flag.String("analysis", "", "Analysis type: single, flow, or side-by-side (inferred when empty)")
	)
	flag.Parse()

	imagePaths := flag.Args()
	if len(imagePaths) == 0 {
		log.Fatalf("❌ Usage: run_evaluation [flags] <screenshot.png> [screenshot2.png ...]")
	}

	provider := models.ModelProvider(*model)
	if !provider.Valid() {
		log.Fatalf("❌ Invalid model provider %q (want openai, gemini, or zhipu)", *model)
	}

	log.Println("🚀 Starting UX evaluation run...")

	// Read screenshots and encode them as data URIs
	images := make([]string, 0, len(imagePaths))
	for _, path := range imagePaths {
		log.Printf("📄 Loading: %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("❌ Failed to read %s: %v", path, err)
		}
		images = append(images, dataURI(path, data))
	}

	analysisType := models.AnalysisType(*analysis)
	if *analysis != "" && !analysisType.Valid() {
		log.Fatalf("❌ Invalid analysis type %q (want single, flow, or side-by-side)", *analysis)
	}
	if analysisType == "" {
		analysisType = models.InferAnalysisType(len(images))
	}
	log.Printf("✅ Loaded %d image(s), analysis type: %s", len(images), analysisType)

	// Pick personas to run
	registry := services.NewPersonaService()
	var personas []models.Persona
	if *personaID != "" {
		persona, err := registry.Resolve(*personaID, nil)
		if err != nil {
			log.Fatalf("❌ Unknown persona %q", *personaID)
		}
		personas = []models.Persona{*persona}
	} else {
		personas = registry.Builtins()
	}
	log.Printf("✅ Running %d persona(s) against %s", len(personas), *baseURL)

	// Drive the batch
	session := services.NewSession(services.NewHTTPEvaluator(*baseURL))
	runs := session.Run(context.Background(), provider, images, *background, analysisType, personas)

	if len(runs) == 0 {
		log.Fatalf("❌ All persona evaluations failed")
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Evaluation Summary (%d/%d personas completed):", len(runs), len(personas))
	for _, run := range runs {
		suffix := ""
		if run.UsedFallback {
			suffix = " (local fallback)"
		}
		log.Printf("\n👤 %s%s", run.Persona.Name, suffix)
		for i, item := range run.Result.Items {
			log.Printf("   Image %d: overall %d (usability %d, accessibility %d, visual %d)",
				i+1, item.Scores.Overall, item.Scores.Usability, item.Scores.Accessibility, item.Scores.Visual)
			log.Printf("   Highlights: %d, Issues: %d", len(item.Highlights), len(item.Issues))
		}
		if winner, ok := services.Winner(run.Result); ok && analysisType == models.AnalysisSideBySide {
			log.Printf("   🏆 Winner: image %d", winner+1)
		}
	}
	log.Println("\n" + strings.Repeat("=", 60))
	log.Println("✅ Evaluation run complete!")
}

func dataURI(path string, data []byte) string {
	mime := "image/jpeg"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".webp":
		mime = "image/webp"
	case ".gif":
		mime = "image/gif"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
