package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/lmileski/natural-selection-game-program/config"
)

// OutputManager writes game artifacts into one output directory. A nil
// manager is a no-op, so callers never branch on whether output is on.
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory. Returns nil if dir is
// empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the effective configuration as YAML alongside the
// logs, so a run can be reproduced from its output directory.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRoundLog writes the per-round rows to round_log.csv.
func (om *OutputManager) WriteRoundLog(rows []RoundStats) error {
	if om == nil {
		return nil
	}
	return om.writeCSV("round_log", rows)
}

// WriteHistogram writes a level histogram to <name>.csv.
func (om *OutputManager) WriteHistogram(name string, h Histogram) error {
	if om == nil {
		return nil
	}
	return om.writeCSV(name, h.Rows())
}

func (om *OutputManager) writeCSV(name string, records interface{}) error {
	path := newFilename(om.dir, name, ".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// newFilename returns dir/base+ext, suffixing " (1)", " (2)", ... before
// the extension when the name is taken, so reruns never clobber earlier
// logs.
func newFilename(dir, base, ext string) string {
	path := filepath.Join(dir, base+ext)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, n, ext))
	}
}
