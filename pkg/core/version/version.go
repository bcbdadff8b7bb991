// ============================================================================
// ngc - RS274/NGC Parser Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the ngc components
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Component versions
	Parser    = "0.1.0"
	Evaluator = "0.1.0"
	CLI       = "0.1.0"
	REPL      = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "eval", "evaluator":
		return Evaluator
	case "cli":
		return CLI
	case "repl":
		return REPL
	default:
		return Toolkit
	}
}

// Info describes a build of the ngc binary
type Info struct {
	Version    string            `json:"version" yaml:"version"`
	GitCommit  string            `json:"git_commit" yaml:"git_commit"`
	BuildDate  string            `json:"build_date" yaml:"build_date"`
	GoVersion  string            `json:"go_version" yaml:"go_version"`
	Platform   string            `json:"platform" yaml:"platform"`
	Components map[string]string `json:"components" yaml:"components"`
}

// Get assembles build information. Empty values fall back to the toolkit
// version and "unknown".
func Get(buildVersion, gitCommit, buildDate string) Info {
	if buildVersion == "" || buildVersion == "dev" {
		buildVersion = Toolkit + "-dev"
	}
	if gitCommit == "" {
		gitCommit = "unknown"
	}
	if buildDate == "" {
		buildDate = "unknown"
	}
	return Info{
		Version:   buildVersion,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Components: map[string]string{
			"parser":    Parser,
			"evaluator": Evaluator,
			"cli":       CLI,
			"repl":      REPL,
		},
	}
}

// String renders a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("ngc %s (%s, built %s, %s %s)", i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
