package db

import (
	"fmt"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"os"
	"path/filepath"
	"strings"
)

var sortColumns = map[string]string{
	model.PropertyID:     "id",
	model.PropertyAmount: "amount",
	model.PropertyOwner:  "owner",
}

// orderBy renders an ORDER BY list from whitelisted columns only. id is
// appended when absent so rows with equal keys come back in a stable order.
func orderBy(orders []model.Order) string {
	parts := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		col, ok := sortColumns[o.Property]
		if !ok {
			continue
		}

		dir := "ASC"
		if o.Direction == model.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
		if col == "id" {
			hasID = true
			break
		}
	}

	if !hasID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", ")
}

func listQuery(orders []model.Order) string {
	return fmt.Sprintf(cashCardListByOwner, orderBy(orders))
}

func findRootDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		if dir == "/" {
			break
		}
		dir = filepath.Dir(dir)
	}
	return "", fmt.Errorf("go.mod not found")
}
