// Package config provides configuration loading for ngc.
//
// Package: config
// Title: ngc Configuration Management
// Description: Loads TOML or YAML configuration files, merges defaults per
//              section, applies environment overrides and validates values
//              against declarative rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Keys use dot notation. With the env prefix NGC the key parser.max_depth is
// overridden by NGC_PARSER_MAX_DEPTH.
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	depth := cfg.GetInt("parser.max_depth", 64)
package config
