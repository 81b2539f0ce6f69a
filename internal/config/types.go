package config

import (
	"github.com/jbonatakis/intimate/internal/report/gemini"
	"github.com/jbonatakis/intimate/internal/scoring"
)

const (
	SchemaVersion = 1

	DirName  = ".intimate"
	FileName = "config.json"

	DefaultModel             = gemini.DefaultModel
	DefaultBaseURL           = gemini.DefaultBaseURL
	DefaultRiskWarnThreshold = scoring.DefaultRiskWarnThreshold
	DefaultConfirmReset      = true

	MinRiskWarnThreshold = 1
	MaxRiskWarnThreshold = 5
)

type RawConfig struct {
	SchemaVersion *int       `json:"schemaVersion,omitempty"`
	Report        *RawReport `json:"report,omitempty"`
	TUI           *RawTUI    `json:"tui,omitempty"`
}

type RawReport struct {
	Model             *string `json:"model,omitempty"`
	BaseURL           *string `json:"baseUrl,omitempty"`
	RiskWarnThreshold *int    `json:"riskWarnThreshold,omitempty"`
}

type RawTUI struct {
	ConfirmReset *bool `json:"confirmReset,omitempty"`
}

type ResolvedConfig struct {
	SchemaVersion int            `json:"schemaVersion"`
	Report        ResolvedReport `json:"report"`
	TUI           ResolvedTUI    `json:"tui"`
}

type ResolvedReport struct {
	Model             string `json:"model"`
	BaseURL           string `json:"baseUrl"`
	RiskWarnThreshold int    `json:"riskWarnThreshold"`
}

type ResolvedTUI struct {
	ConfirmReset bool `json:"confirmReset"`
}

func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		Report: ResolvedReport{
			Model:             DefaultModel,
			BaseURL:           DefaultBaseURL,
			RiskWarnThreshold: DefaultRiskWarnThreshold,
		},
		TUI: ResolvedTUI{
			ConfirmReset: DefaultConfirmReset,
		},
	}
}
