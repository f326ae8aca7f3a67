package steps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// expectErrorCode checks that err is a GameError carrying code
func expectErrorCode(err error, code string) error {
	if err == nil {
		return fmt.Errorf("expected %s error, got success", code)
	}
	var gameErr *shared.GameError
	if !errors.As(err, &gameErr) {
		return fmt.Errorf("expected %s error, got %T: %v", code, err, err)
	}
	if string(gameErr.Code) != code {
		return fmt.Errorf("expected %s error, got %s: %v", code, gameErr.Code, err)
	}
	return nil
}

// splitList splits "a, b, c" into its trimmed items
func splitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// cellValue reads a cell by column name, using the first table row as header
func cellValue(table *godog.Table, row *messages.PickleTableRow, column string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, cell := range table.Rows[0].Cells {
		if cell.Value == column {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}
