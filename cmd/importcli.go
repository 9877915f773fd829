// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sms-mcp-server/commons"
	"sms-mcp-server/commons/prefixdb"
	"sms-mcp-server/db"

	"github.com/google/uuid"
)

type ImportConfig struct {
	Input   string
	Output  string
	ToDB    bool
	Migrate bool
	Top     int
}

type ImportSummary struct {
	BatchID     string
	Records     int
	Skipped     []int
	Fingerprint string
	Stats       prefixdb.Stats
}

// Import parses a prefix text file, writes the optional JSON database and
// replaces the prefix_records table when ToDB is set.
func Import(cfg ImportConfig) (ImportSummary, error) {
	records, report, err := prefixdb.LoadText(cfg.Input)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("parse %s: %w", cfg.Input, err)
	}

	table, err := prefixdb.BuildTable(records)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("build table: %w", err)
	}
	records = table.Records()

	summary := ImportSummary{
		BatchID:     uuid.NewString(),
		Records:     len(records),
		Skipped:     report.Skipped,
		Fingerprint: table.Fingerprint(),
		Stats:       prefixdb.Analyze(records, cfg.Top),
	}
	commons.Logger.Infof("Parsed %d records from %s (batch %s)", summary.Records, cfg.Input, summary.BatchID)

	if cfg.Output != "" {
		data, err := prefixdb.MarshalJSON(records)
		if err != nil {
			return summary, fmt.Errorf("encode json: %w", err)
		}
		if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
			return summary, fmt.Errorf("write %s: %w", cfg.Output, err)
		}
		commons.Logger.Infof("Saved JSON database to %s", cfg.Output)
	}

	if cfg.ToDB {
		conn, err := db.Open()
		if err != nil {
			return summary, err
		}
		if sqlDB, err := conn.DB(); err == nil {
			defer sqlDB.Close()
		}
		if cfg.Migrate {
			if err := db.Migrate(conn); err != nil {
				return summary, err
			}
		}
		if err := db.ReplacePrefixRecords(conn, records, summary.BatchID); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func printSummary(w io.Writer, s ImportSummary) {
	fmt.Fprintf(w, "Batch:       %s\n", s.BatchID)
	fmt.Fprintf(w, "Records:     %d\n", s.Records)
	fmt.Fprintf(w, "Skipped:     %d lines\n", len(s.Skipped))
	fmt.Fprintf(w, "Fingerprint: %s\n", s.Fingerprint)

	fmt.Fprintln(w, "\nBy carrier:")
	for _, c := range s.Stats.ByCarrier {
		fmt.Fprintf(w, "  %-20s %d\n", c.Name, c.Count)
	}
	fmt.Fprintln(w, "\nTop provinces:")
	for _, c := range s.Stats.TopProvinces {
		fmt.Fprintf(w, "  %-20s %d\n", c.Name, c.Count)
	}
	fmt.Fprintln(w, "\nTop cities:")
	for _, c := range s.Stats.TopCities {
		fmt.Fprintf(w, "  %-20s %d\n", c.Name, c.Count)
	}
}

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	cfg := ImportConfig{}
	flag.StringVar(&cfg.Input, "input", "", "Prefix text file (prefix,province,city,carrier per line)")
	flag.StringVar(&cfg.Output, "output", "", "Write the parsed table as a JSON database to this path")
	flag.BoolVar(&cfg.ToDB, "db", false, "Replace the prefix_records table with the parsed records")
	flag.BoolVar(&cfg.Migrate, "migrate", false, "Run database migrations before importing")
	flag.IntVar(&cfg.Top, "top", 10, "Number of provinces and cities to list")
	// Read by commons.LoadEnvFile before parsing; registered so flag accepts it.
	flag.String("env-file", "", "Load environment variables from this file")
	flag.Parse()

	if cfg.Input == "" {
		flag.Usage()
		os.Exit(2)
	}

	summary, err := Import(cfg)
	if err != nil {
		commons.Logger.Fatal(err)
	}
	printSummary(os.Stdout, summary)
}

// go run ./cmd/importcli.go -input data.txt -output phone_db.json
