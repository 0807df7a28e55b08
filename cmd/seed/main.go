package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
	"github.com/syduc993/hr-management-system-sub000/config"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/utils"
)

// Seeds the record store with demo data for local development. Attendance
// punches can additionally be bulk-loaded from a CSV file with columns:
// employeeId,type,position,timestamp
func main() {
	configPath := flag.String("config", os.Getenv("HR_CONFIG_FILE"), "path to yaml config file")
	csvPath := flag.String("punches", "", "optional CSV file of attendance punches to load")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.BaseURL == "" || cfg.Store.Token == "" {
		fmt.Println("Error: store baseUrl and token are required")
		os.Exit(1)
	}

	client := basestore.NewClient(cfg.Store.BaseURL, cfg.Store.Token)
	ctx := context.Background()

	if err := seedDemoData(ctx, client); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *csvPath != "" {
		if err := loadPunches(ctx, client, *csvPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Done.")
}

func seedDemoData(ctx context.Context, client *basestore.Client) error {
	requestNo := fmt.Sprintf("REQ-%s", uuid.NewString()[:8])

	fmt.Printf("Creating staffing request %s...\n", requestNo)
	if _, err := client.Tables.Insert(ctx, model.TableRecruitmentRequests, map[string]any{
		"requestNo":  requestNo,
		"department": "Sự kiện",
		"status":     "active",
		"quantity":   2,
		"gender":     "any",
		"fromDate":   "2025-01-01",
		"toDate":     "2025-01-31",
		"position":   "PG",
	}); err != nil {
		return fmt.Errorf("failed to create staffing request: %w", err)
	}

	employees := []map[string]any{
		{"employeeId": "NV001", "fullName": "Nguyễn Văn An", "position": "PG", "status": "active"},
		{"employeeId": "NV002", "fullName": "Trần Thị Bình", "position": "Mascot", "status": "active"},
	}
	for _, emp := range employees {
		fmt.Printf("Creating employee %s...\n", emp["employeeId"])
		if _, err := client.Tables.Insert(ctx, model.TableEmployees, emp); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
	}

	fmt.Println("Creating work history entries...")
	for _, employeeID := range []string{"NV001", "NV002"} {
		if _, err := client.Tables.Insert(ctx, model.TableWorkHistory, map[string]any{
			"employeeId": employeeID,
			"requestNo":  requestNo,
			"fromDate":   "2025-01-01",
			"toDate":     "2025-01-31",
			"hourlyRate": 35000,
		}); err != nil {
			return fmt.Errorf("failed to create work history: %w", err)
		}
	}

	return nil
}

func loadPunches(ctx context.Context, client *basestore.Client, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := utils.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	created := 0
	for i, row := range rows {
		// Skip the header row.
		if i == 0 && len(row) > 0 && row[0] == "employeeId" {
			continue
		}
		if len(row) < 4 {
			fmt.Printf("Warning: skipping short row %d\n", i+1)
			continue
		}

		if _, err := client.Tables.Insert(ctx, model.TableAttendanceLogs, map[string]any{
			"employeeId": row[0],
			"type":       row[1],
			"position":   row[2],
			"timestamp":  row[3],
		}); err != nil {
			return fmt.Errorf("failed to insert punch on row %d: %w", i+1, err)
		}
		created++
	}

	fmt.Printf("Loaded %d punches from %s\n", created, path)
	return nil
}
