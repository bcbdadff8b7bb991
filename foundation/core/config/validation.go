// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against per-key rules: required
//              keys, expected type, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-03-02 v0.2.0: OneOf rule, single aggregated error

package config

import (
	"fmt"
	"sort"
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int", "bool" or "float"
	Min      *int     // Minimum value for ints
	Max      *int     // Maximum value for ints
	OneOf    []string // Allowed values for strings, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// IntBound returns a pointer for use as ValidationRule.Min or Max
func IntBound(v int) *int {
	return &v
}

// Validate checks the configuration against rules. All violations are
// reported in one error with code INVALID_CONFIG; the problems detail holds
// one message per violation in key order.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return ngcerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(ngcerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) && c.getEnvValueLocked(key) == "" {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		v := c.GetInt(key, minInt)
		if v == minInt {
			return fmt.Errorf("field '%s' must be an integer", key)
		}
		if rule.Min != nil && v < *rule.Min {
			return fmt.Errorf("field '%s' must be >= %d, got %d", key, *rule.Min, v)
		}
		if rule.Max != nil && v > *rule.Max {
			return fmt.Errorf("field '%s' must be <= %d, got %d", key, *rule.Max, v)
		}
	case "bool":
		if c.GetBool(key, true) != c.GetBool(key, false) {
			return fmt.Errorf("field '%s' must be a boolean", key)
		}
	case "float":
		if c.GetFloat(key, -1) == -1 && c.GetFloat(key, 1) == 1 {
			return fmt.Errorf("field '%s' must be a number", key)
		}
	}

	if len(rule.OneOf) > 0 {
		v := c.GetString(key)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(v, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), v)
	}
	return nil
}

const minInt = -int(^uint(0)>>1) - 1

func (c *Config) getEnvValueLocked(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getEnvValue(key)
}
