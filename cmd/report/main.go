package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
	"github.com/syduc993/hr-management-system-sub000/cache"
	"github.com/syduc993/hr-management-system-sub000/config"
	"github.com/syduc993/hr-management-system-sub000/core"
	"github.com/syduc993/hr-management-system-sub000/export"
	"github.com/syduc993/hr-management-system-sub000/infrastructure/communication"
	"github.com/syduc993/hr-management-system-sub000/infrastructure/filesystem"
	"github.com/syduc993/hr-management-system-sub000/timekit"
)

func main() {
	configPath := flag.String("config", os.Getenv("HR_CONFIG_FILE"), "path to yaml config file")
	list := flag.Bool("list", false, "list archived reports and exit")
	fetch := flag.String("fetch", "", "download an archived report to stdout and exit")
	dryRun := flag.Bool("dry-run", false, "generate the report but skip the upload and slack post")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if *list {
		keys, err := filesystem.ListFiles(cfg.Report.Bucket, ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return
	}

	if *fetch != "" {
		if err := filesystem.ReadFile(cfg.Report.Bucket, *fetch, ctx, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, cfg, *dryRun); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, dryRun bool) error {
	if cfg.Store.BaseURL == "" || cfg.Store.Token == "" {
		return fmt.Errorf("store baseUrl and token are required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := basestore.NewClient(cfg.Store.BaseURL, cfg.Store.Token)
	tn := timekit.NewNormalizer(nil)
	c := cache.New()
	ttl := cfg.CacheTTL()

	attendance := core.NewAttendanceService(client.Tables, c, tn, logger, ttl)
	recruitment := core.NewRecruitmentService(client.Tables, c, tn, logger, ttl)

	fmt.Println("Fetching hours summary...")
	summaries := recruitment.Summarize(ctx)
	fmt.Printf("Summarized %d requests\n", len(summaries))

	var buf bytes.Buffer
	if err := export.WriteHoursSummary(tn, summaries, &buf); err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	key := fmt.Sprintf("reports/tong-hop-gio-cong-%s.xlsx", tn.DateString(tn.Now()))

	if dryRun {
		fmt.Printf("Dry run: would upload %d bytes to %s/%s\n", buf.Len(), cfg.Report.Bucket, key)
		return nil
	}

	fmt.Printf("Uploading report to %s/%s...\n", cfg.Report.Bucket, key)
	if err := filesystem.WriteFile(cfg.Report.Bucket, key, ctx, bytes.NewReader(buf.Bytes())); err != nil {
		return err
	}

	notifier := communication.ConnectSlack()
	if err := notifier.Info(communication.FormatSummaryNotice(key, summaries)); err != nil {
		fmt.Printf("Warning: slack notice failed: %v\n", err)
	}

	if digest := communication.FormatAnomalyDigest(attendance.GetEmployeeHours(ctx)); digest != "" {
		if err := notifier.Error(digest); err != nil {
			fmt.Printf("Warning: slack digest failed: %v\n", err)
		}
	}

	fmt.Println("Done.")
	return nil
}
