package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Wipes the local ledgers in the shoptrack data directory. For testing only.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Shop Data for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL SHOP DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all products")
	fmt.Println("  - Delete all sales")
	fmt.Println("  - Delete all purchases")
	fmt.Println("  - Reset invoice and bill sequences")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	dataDir := os.Getenv("SHOPTRACK_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Unable to resolve data directory: %v\n", err)
		}
		dataDir = filepath.Join(home, ".shoptrack")
	}

	fmt.Println()
	fmt.Printf("Resetting %s ...\n", dataDir)

	keys := []string{"products", "sales", "purchases", "sequences"}
	for _, key := range keys {
		path := filepath.Join(dataDir, key+".json")
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Failed to remove %s: %v\n", path, err)
		}
		fmt.Printf("  Cleared %s\n", key)
	}

	fmt.Println()
	fmt.Println("Shop data reset successful!")
}
