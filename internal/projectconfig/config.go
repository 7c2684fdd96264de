// Package projectconfig provides the ProjectConfig struct and loader for
// .bidlens.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spboyer/bidlens/internal/analysis"
	"github.com/spboyer/bidlens/internal/utils"
)

// FileName is the configuration file searched for by Load.
const FileName = ".bidlens.yaml"

// Default values for project configuration. These are the single source of
// truth: New() references them and no other code should duplicate them.
const (
	DefaultResultsDir = "simulation-results/"

	DefaultExportEnv = "SIM_EXPORT"

	DefaultReportFormat = "text"
)

// PathsConfig holds directory paths.
type PathsConfig struct {
	Results string `yaml:"results,omitempty"`
}

// AnalysisConfig mirrors analysis.Config. Pointer fields distinguish an
// explicit zero from an absent key.
type AnalysisConfig struct {
	HistogramMin            *int                      `yaml:"histogram_min,omitempty"`
	HistogramMax            *int                      `yaml:"histogram_max,omitempty"`
	HistogramBarScale       float64                   `yaml:"histogram_bar_scale,omitempty"`
	BonusPoints             *int                      `yaml:"bonus_points,omitempty"`
	TrumpDisparityThreshold *float64                  `yaml:"trump_disparity_threshold,omitempty"`
	NumPlayers              int                       `yaml:"num_players,omitempty"`
	BootstrapIterations     *int                      `yaml:"bootstrap_iterations,omitempty"`
	HandSizeBuckets         []analysis.HandSizeBucket `yaml:"hand_size_buckets,omitempty"`
	TrumpTypes              []string                  `yaml:"trump_types,omitempty"`
}

// ExportConfig controls the CSV export of bid samples.
type ExportConfig struct {
	// Env names the environment variable that enables the export when set to "1".
	Env     string `yaml:"env,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`
}

// ReportConfig holds report rendering defaults.
type ReportConfig struct {
	Format string `yaml:"format,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .bidlens.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Analysis AnalysisConfig `yaml:"analysis,omitempty"`
	Export   ExportConfig   `yaml:"export,omitempty"`
	Report   ReportConfig   `yaml:"report,omitempty"`

	// Dir is the directory of the file the config was read from, empty for
	// defaults. Relative paths in the file are resolved against it.
	Dir string `yaml:"-"`
}

// ResultsDir returns the results directory, resolved against the config
// file's directory when one was loaded.
func (c *ProjectConfig) ResultsDir() string {
	return utils.ResolvePath(c.Paths.Results, c.Dir)
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Results: DefaultResultsDir,
		},
		Analysis: AnalysisConfig{
			HistogramMin:            intPtr(analysis.DefaultHistogramMin),
			HistogramMax:            intPtr(analysis.DefaultHistogramMax),
			HistogramBarScale:       analysis.DefaultHistogramBarScale,
			BonusPoints:             intPtr(analysis.DefaultBonusPoints),
			TrumpDisparityThreshold: floatPtr(analysis.DefaultTrumpDisparityThreshold),
			NumPlayers:              analysis.DefaultNumPlayers,
			BootstrapIterations:     intPtr(analysis.DefaultBootstrapIterations),
			HandSizeBuckets:         analysis.DefaultHandSizeBuckets(),
			TrumpTypes:              analysis.DefaultTrumpTypes(),
		},
		Export: ExportConfig{
			Env:     DefaultExportEnv,
			Enabled: boolPtr(false),
		},
		Report: ReportConfig{
			Format: DefaultReportFormat,
		},
	}
}

// AnalysisSettings converts the analysis section into an analysis.Config.
func (c *ProjectConfig) AnalysisSettings() analysis.Config {
	a := c.Analysis
	return analysis.Config{
		HistogramMin:            derefInt(a.HistogramMin, analysis.DefaultHistogramMin),
		HistogramMax:            derefInt(a.HistogramMax, analysis.DefaultHistogramMax),
		HistogramBarScale:       a.HistogramBarScale,
		BonusPoints:             derefInt(a.BonusPoints, analysis.DefaultBonusPoints),
		TrumpDisparityThreshold: derefFloat(a.TrumpDisparityThreshold, analysis.DefaultTrumpDisparityThreshold),
		NumPlayers:              a.NumPlayers,
		BootstrapIterations:     derefInt(a.BootstrapIterations, analysis.DefaultBootstrapIterations),
		HandSizeBuckets:         append([]analysis.HandSizeBucket(nil), a.HandSizeBuckets...),
		TrumpTypes:              append([]string(nil), a.TrumpTypes...),
	}
}

// ExportRequested reports whether the export is enabled by the file or by
// the configured environment variable. getenv is usually os.Getenv.
func (c *ProjectConfig) ExportRequested(getenv func(string) string) bool {
	if c.Export.Enabled != nil && *c.Export.Enabled {
		return true
	}
	return c.Export.Env != "" && getenv(c.Export.Env) == "1"
}

// Load finds .bidlens.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	data, path, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}
	return parse(data, path)
}

// LoadFile reads an explicitly named config file. A missing file is an error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, name string) (*ProjectConfig, error) {
	cfg := New()
	if dir, err := filepath.Abs(filepath.Dir(name)); err == nil {
		cfg.Dir = dir
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	mergeConfig(cfg, &fileCfg)

	if err := cfg.AnalysisSettings().Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis settings in %s: %w", name, err)
	}
	return cfg, nil
}

// findConfigFile walks up from dir looking for .bidlens.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, string, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}

	// Analysis
	if src.Analysis.HistogramMin != nil {
		dst.Analysis.HistogramMin = src.Analysis.HistogramMin
	}
	if src.Analysis.HistogramMax != nil {
		dst.Analysis.HistogramMax = src.Analysis.HistogramMax
	}
	if src.Analysis.HistogramBarScale != 0 {
		dst.Analysis.HistogramBarScale = src.Analysis.HistogramBarScale
	}
	if src.Analysis.BonusPoints != nil {
		dst.Analysis.BonusPoints = src.Analysis.BonusPoints
	}
	if src.Analysis.TrumpDisparityThreshold != nil {
		dst.Analysis.TrumpDisparityThreshold = src.Analysis.TrumpDisparityThreshold
	}
	if src.Analysis.NumPlayers != 0 {
		dst.Analysis.NumPlayers = src.Analysis.NumPlayers
	}
	if src.Analysis.BootstrapIterations != nil {
		dst.Analysis.BootstrapIterations = src.Analysis.BootstrapIterations
	}
	if len(src.Analysis.HandSizeBuckets) > 0 {
		dst.Analysis.HandSizeBuckets = src.Analysis.HandSizeBuckets
	}
	if len(src.Analysis.TrumpTypes) > 0 {
		dst.Analysis.TrumpTypes = src.Analysis.TrumpTypes
	}

	// Export
	if src.Export.Env != "" {
		dst.Export.Env = src.Export.Env
	}
	if src.Export.Enabled != nil {
		dst.Export.Enabled = src.Export.Enabled
	}

	// Report
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func derefInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func derefFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
