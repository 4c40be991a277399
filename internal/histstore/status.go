package histstore

import (
	"fmt"

	"github.com/huangsam/qams/schema"
)

// PrintHistoryStatus prints review history status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	if status.Location != "" {
		fmt.Printf("Location: %s\n", status.Location)
	}
	fmt.Printf("Total Runs: %d\n", status.RunCount)
	if status.LastRunAt != nil {
		fmt.Printf("Last Run: %s\n", status.LastRunAt.Format("2006-01-02 15:04:05"))
	}
}
