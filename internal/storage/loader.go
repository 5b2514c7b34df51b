package storage

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// LoadCatalogFromFile reads the seed catalog from a JSON file.
func LoadCatalogFromFile(path string) ([]domain.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return items, nil
}
