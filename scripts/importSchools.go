package main

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"madrasa/config"
	"madrasa/database"
	"madrasa/models"
	"madrasa/store"
)

// Imports the school roster from Schools.csv. Expected columns:
// name, name_ar, name_he, region, contact_email.
// Rows matching an existing school name are skipped.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer database.Close(db)

	s := store.New(db)

	file, err := os.Open("Schools.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	optional := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}

	existing, err := s.ListSchools()
	if err != nil {
		log.Fatalf("Failed to list existing schools: %v", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, sc := range existing {
		byName[sc.Name] = true
	}

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		name := field(row, "name")
		if name == "" {
			log.Printf("Row %d: missing name, skipping", i+2)
			skipped++
			continue
		}
		if byName[name] {
			skipped++
			continue
		}

		school := models.School{
			Name:         name,
			NameAr:       optional(field(row, "name_ar")),
			NameHe:       optional(field(row, "name_he")),
			Region:       optional(field(row, "region")),
			ContactEmail: optional(field(row, "contact_email")),
		}

		if err := s.CreateSchool(&school); err != nil {
			log.Printf("Row %d: failed to insert %q: %v", i+2, name, err)
			skipped++
			continue
		}
		byName[name] = true
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d skipped", inserted, skipped)
}
