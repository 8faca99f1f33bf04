package main

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"book-catalog/config"
	"book-catalog/library"
)

// record is one entry of the import file: a JSON array of these. Year is a
// Number so both quoted and bare values import; anything unparsable falls
// back to 0 like an interactive add.
type record struct {
	Title    string      `json:"title"`
	Author   string      `json:"author"`
	Category string      `json:"category"`
	Year     json.Number `json:"year"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <books.json>\n", os.Args[0])
		os.Exit(1)
	}

	cfg := config.New()
	manager, err := library.NewManager(library.Options{Path: cfg.Data.Path})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading import file: %v\n", err)
		os.Exit(1)
	}

	successCount, errorCount, err := importRecords(manager, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)

	// Display summary of the catalog after import
	if successCount > 0 {
		fmt.Println("\nCatalog:")
		books, err := manager.Books.List()
		if err != nil {
			fmt.Printf("Error retrieving books: %v\n", err)
			return
		}
		fmt.Printf("%-10s %-50s %-30s\n", "ID", "Title", "Author")
		fmt.Println(strings.Repeat("-", 92))
		for _, book := range books {
			fmt.Printf("%-10s %-50s %-30s\n", book.ID, truncateString(book.Title, 50), truncateString(book.Author, 30))
		}
	}
}

// importRecords decodes a JSON array of records and adds each through the
// manager, reporting per-record progress. A file that does not parse fails
// as a whole; a record the catalog rejects only counts as an error.
func importRecords(manager *library.Manager, raw []byte) (successCount, errorCount int, err error) {
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, 0, fmt.Errorf("parse import file: %w", err)
	}

	fmt.Printf("Importing %d record(s) into %s...\n", len(records), manager.Path())

	for _, r := range records {
		fmt.Printf("Importing: %s by %s... ", r.Title, r.Author)

		book, err := manager.Books.Add(r.Title, r.Author, r.Category, r.Year.String())
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}

		fmt.Printf("SUCCESS (ID: %s)\n", book.ID)
		successCount++
	}

	return successCount, errorCount, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
