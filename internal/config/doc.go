// Package config provides configuration structures and utilities for aioready.
// It defines fetch and judge settings, keyword overrides and report
// preferences, and loads them from flags, a YAML file and the environment.
package config
