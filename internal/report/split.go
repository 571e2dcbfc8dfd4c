package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"cutlog/internal/category"
	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
)

var unsafeNameChars = regexp.MustCompile(`[^\w\-]+`)

// SanitizeName rewrites a category name into a filesystem-safe file stem.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// SplitByCategory writes one CSV per category into dir and returns the paths
// written. An event carrying several categories appears in each of its
// category files; events without categories land under the Uncategorized
// sentinel.
func SplitByCategory(events []edl.Event, fps float64, dir string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	byCategory := map[string][]edl.Event{}
	var order []string
	add := func(name string, event edl.Event) {
		if _, ok := byCategory[name]; !ok {
			order = append(order, name)
		}
		byCategory[name] = append(byCategory[name], event)
	}
	for _, event := range events {
		if len(event.Categories) == 0 {
			add(category.Uncategorized, event)
			continue
		}
		for _, name := range event.Categories {
			add(name, event)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrValidation, "report", "split", fmt.Sprintf("create output directory %s", dir), err)
	}

	var paths []string
	for _, name := range order {
		path := filepath.Join(dir, fmt.Sprintf("events_%s.csv", SanitizeName(name)))
		content := Events(byCategory[name], fps, FormatCSV)
		if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
			return paths, pipeline.Wrap(pipeline.ErrValidation, "report", "split", fmt.Sprintf("write %s", path), err)
		}
		logger.Info("wrote category export",
			logging.String("category", name),
			logging.String(logging.FieldFile, path),
			logging.Int(logging.FieldEvents, len(byCategory[name])))
		paths = append(paths, path)
	}
	return paths, nil
}
