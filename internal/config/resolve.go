package config

import "strings"

// ResolveConfig merges project/global configs with built-in defaults.
// Precedence per key: project > global > defaults; thresholds are clamped.
func ResolveConfig(project RawConfig, global RawConfig) ResolvedConfig {
	defaults := DefaultResolvedConfig()

	pick := func(cfg RawConfig) RawReport {
		if cfg.Report == nil {
			return RawReport{}
		}
		return *cfg.Report
	}
	pr, gr := pick(project), pick(global)

	var pc, gc *bool
	if project.TUI != nil {
		pc = project.TUI.ConfirmReset
	}
	if global.TUI != nil {
		gc = global.TUI.ConfirmReset
	}

	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		Report: ResolvedReport{
			Model:   resolveString(pr.Model, gr.Model, defaults.Report.Model),
			BaseURL: strings.TrimRight(resolveString(pr.BaseURL, gr.BaseURL, defaults.Report.BaseURL), "/"),
			RiskWarnThreshold: resolveIntWithBounds(pr.RiskWarnThreshold, gr.RiskWarnThreshold,
				defaults.Report.RiskWarnThreshold, MinRiskWarnThreshold, MaxRiskWarnThreshold),
		},
		TUI: ResolvedTUI{
			ConfirmReset: resolveBool(pc, gc, defaults.TUI.ConfirmReset),
		},
	}
}

// Overrides are command-line values applied on top of the files.
type Overrides struct {
	Model   string
	BaseURL string
}

func (c ResolvedConfig) WithOverrides(o Overrides) ResolvedConfig {
	if v := strings.TrimSpace(o.Model); v != "" {
		c.Report.Model = v
	}
	if v := strings.TrimSpace(o.BaseURL); v != "" {
		c.Report.BaseURL = strings.TrimRight(v, "/")
	}
	return c
}

func resolveString(projectVal *string, globalVal *string, defaultVal string) string {
	if value := normalizeString(projectVal); value != "" {
		return value
	}
	if value := normalizeString(globalVal); value != "" {
		return value
	}
	return defaultVal
}

func normalizeString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func resolveBool(projectVal *bool, globalVal *bool, defaultVal bool) bool {
	if projectVal != nil {
		return *projectVal
	}
	if globalVal != nil {
		return *globalVal
	}
	return defaultVal
}

func resolveIntWithBounds(projectVal *int, globalVal *int, defaultVal int, min int, max int) int {
	if projectVal != nil {
		return clampInt(*projectVal, min, max)
	}
	if globalVal != nil {
		return clampInt(*globalVal, min, max)
	}
	return clampInt(defaultVal, min, max)
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
