package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"luna-assistant/config"
	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant"
	"luna-assistant/internal/assistant/cache"
	"luna-assistant/internal/assistant/capability"
	"luna-assistant/internal/assistant/classifier"
	"luna-assistant/internal/assistant/resolver"
	"luna-assistant/internal/assistant/usecase"
	"luna-assistant/internal/model"
	"luna-assistant/pkg/datemath"
	"luna-assistant/pkg/log"
)

// Interactive console for exercising the engine without the HTTP layer.
// One session per run, so follow-up inputs see the same context window.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	dateMathParser, dtErr := datemath.NewParser(cfg.Assistant.DefaultTimezone)
	if dtErr != nil {
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	tracker := analytics.NewInMemoryTracker(logger, cfg.Analytics.Capacity)
	uc := usecase.New(
		logger,
		classifier.New(),
		resolver.New(logger, cfg.Assistant.DefaultTimezone, cfg.Assistant.DefaultLanguage),
		capability.NewDefaultRegistry(dateMathParser),
		cache.New(cfg.Cache.Size, cfg.Cache.TTL),
		tracker,
		usecase.Config{
			ThresholdHandle:   cfg.Assistant.ThresholdHandle,
			ThresholdFallback: cfg.Assistant.ThresholdFallback,
			CacheTTL:          cfg.Cache.TTL,
		},
	)

	sc := model.Scope{SessionID: uuid.NewString()}
	fmt.Println("Luna local engine. Type a message, \"stats\" for the dashboard, or \"quit\".")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "stats":
			printDashboard(tracker.Aggregate(ctx, analytics.Filter{}))
			continue
		}

		out, err := uc.Process(ctx, sc, assistant.ProcessInput{Text: line})
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		printResult(out)
	}
}

func printResult(out assistant.ProcessOutput) {
	res := out.Result
	fmt.Printf("[%s] %s/%s (%.2f) in %s\n",
		res.Type, res.Intent.Category, res.Intent.Action, res.Intent.Confidence, res.ExecutionTime)
	if res.Content != "" {
		fmt.Println(" ", res.Content)
	}
	if res.Action != nil {
		fmt.Printf("  action: %s %v\n", res.Action.Type, res.Action.Payload)
	}
	for _, sa := range res.SuggestedActions {
		fmt.Printf("  suggestion: %s\n", sa.Label)
	}
}

func printDashboard(dash analytics.Dashboard) {
	ov := dash.Overview
	fmt.Printf("events=%d handled_locally=%d cache_hits=%d success_rate=%.2f\n",
		ov.TotalEvents, ov.HandledLocally, ov.CacheHits, ov.AverageSuccessRate)
	for _, m := range dash.Performance {
		fmt.Printf("  %s/%s uses=%d success=%.2f popularity=%.1f\n",
			m.Category, m.Action, m.TotalUsage, m.SuccessRate, m.PopularityScore)
	}
	for _, in := range dash.Insights {
		fmt.Printf("  insight[%s]: %s\n", in.Type, in.Message)
	}
}
