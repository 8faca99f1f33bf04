package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"book-catalog/config"
	"book-catalog/library"
)

const menu = `
Book Catalog - choose an option:
1. Add book
2. List books
3. Update book
4. Delete book
5. Search books
6. Generate report (count by category)
7. Exit
`

func main() {
	cfg := config.New()

	root := &cobra.Command{
		Use:          "book-catalog",
		Short:        "Single-user, file-backed book catalog manager",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	root.Flags().StringVar(&cfg.Data.Path, "data", cfg.Data.Path, "path to the catalog file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	manager, err := library.NewManager(library.Options{Path: cfg.Data.Path})
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	if err := manager.EnsureDemoUser(); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	ok, err := login(scanner, manager)
	if err != nil {
		return err
	}
	if !ok {
		// A failed login falls through with a normal exit, like choice 7.
		return nil
	}

	for {
		fmt.Print(menu, "\n")
		fmt.Print("Enter choice: ")
		if !scanner.Scan() {
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			handleAdd(scanner, manager)
		case "2":
			handleList(manager)
		case "3":
			handleUpdate(scanner, manager)
		case "4":
			handleDelete(scanner, manager)
		case "5":
			handleSearch(scanner, manager)
		case "6":
			handleReport(manager)
		case "7":
			fmt.Println("Goodbye")
			return nil
		default:
			fmt.Println("Invalid choice")
		}
	}
}

// readPassword masks input when stdin is a terminal and falls back to a
// plain read when it is not (pipes, tests).
func readPassword(sc *bufio.Scanner, label string) (string, error) {
	fmt.Print(label)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", err
		}
		fmt.Println() // Add newline after password input
		return strings.TrimSpace(string(raw)), nil
	}
	if !sc.Scan() {
		return "", sc.Err()
	}
	return strings.TrimSpace(sc.Text()), nil
}

func login(sc *bufio.Scanner, manager *library.Manager) (bool, error) {
	fmt.Println("\n=== Login ===")
	fmt.Print("Username: ")
	if !sc.Scan() {
		return false, sc.Err()
	}
	username := strings.TrimSpace(sc.Text())

	password, err := readPassword(sc, "Password: ")
	if err != nil {
		return false, fmt.Errorf("failed to read password: %w", err)
	}

	ok, err := manager.Login(username, password)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Printf("Login failed. Try demo user: %s / %s\n", library.DemoUsername, library.DemoPassword)
		return false, nil
	}
	fmt.Println("Login successful!")
	return true, nil
}

func prompt(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func handleAdd(sc *bufio.Scanner, manager *library.Manager) {
	title, ok := prompt(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := prompt(sc, "Author: ")
	if !ok {
		return
	}
	category, ok := prompt(sc, "Category: ")
	if !ok {
		return
	}
	year, ok := prompt(sc, "Year: ")
	if !ok {
		return
	}

	book, err := manager.Books.Add(title, author, category, year)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added book: %s | %s by %s (%d) - %s\n",
		book.ID, book.Title, book.Author, book.Year, book.Category)
}

func handleList(manager *library.Manager) {
	books, err := manager.Books.List()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(books) == 0 {
		fmt.Println("No books in catalog.")
		return
	}

	fmt.Printf("%-10s %-30s %-25s %-6s %s\n", "ID", "Title", "Author", "Year", "Category")
	fmt.Println(strings.Repeat("-", 90))
	for _, b := range books {
		fmt.Printf("%-10s %-30s %-25s %-6d %s\n",
			b.ID, truncateString(b.Title, 30), truncateString(b.Author, 25), b.Year, b.Category)
	}
}

func handleUpdate(sc *bufio.Scanner, manager *library.Manager) {
	id, ok := prompt(sc, "Enter book id to update: ")
	if !ok {
		return
	}

	book, err := manager.Books.FindByID(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if book == nil {
		fmt.Println("Book not found")
		return
	}

	fmt.Println("Leave blank to keep current value")

	title, ok := prompt(sc, fmt.Sprintf("Title [%s]: ", book.Title))
	if !ok {
		return
	}
	author, ok := prompt(sc, fmt.Sprintf("Author [%s]: ", book.Author))
	if !ok {
		return
	}
	category, ok := prompt(sc, fmt.Sprintf("Category [%s]: ", book.Category))
	if !ok {
		return
	}
	year, ok := prompt(sc, fmt.Sprintf("Year [%d]: ", book.Year))
	if !ok {
		return
	}

	updated, err := manager.Books.Update(id, buildBookUpdate(title, author, category, year))
	if err != nil {
		fmt.Printf("Error updating book: %v\n", err)
		return
	}
	if updated == nil {
		fmt.Println("Book not found")
		return
	}
	fmt.Printf("Updated: %s | %s by %s (%d) - %s\n",
		updated.ID, updated.Title, updated.Author, updated.Year, updated.Category)
}

// buildBookUpdate maps raw prompt input to a partial update. Blank input
// keeps the current value, as does a year that does not parse as an
// integer.
func buildBookUpdate(title, author, category, year string) library.BookUpdate {
	var change library.BookUpdate
	if title != "" {
		change.Title = &title
	}
	if author != "" {
		change.Author = &author
	}
	if category != "" {
		change.Category = &category
	}
	if year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			change.Year = &y
		}
	}
	return change
}

func handleDelete(sc *bufio.Scanner, manager *library.Manager) {
	id, ok := prompt(sc, "Enter book id to delete: ")
	if !ok {
		return
	}

	removed, err := manager.Books.Delete(id)
	if err != nil {
		fmt.Printf("Error deleting book: %v\n", err)
		return
	}
	if removed {
		fmt.Println("Deleted")
	} else {
		fmt.Println("Book not found")
	}
}

func handleSearch(sc *bufio.Scanner, manager *library.Manager) {
	query, ok := prompt(sc, "Search query (title or author): ")
	if !ok {
		return
	}

	results, err := manager.Books.Search(query)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Printf("No books found matching '%s'.\n", query)
		return
	}

	fmt.Printf("Found %d book(s) matching '%s':\n", len(results), query)
	for _, b := range results {
		fmt.Printf("%s | %s by %s\n", b.ID, b.Title, b.Author)
	}
}

func handleReport(manager *library.Manager) {
	counts, err := manager.Reports.CountByCategory()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("Count by category:")
	for _, c := range counts {
		fmt.Printf("%s: %d\n", c.Category, c.Count)
	}
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
