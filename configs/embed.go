// Package configs provides embedded configuration templates for textmark.
//
// Templates are embedded at build time using Go's //go:embed directive, so
// they are available in every distribution: source builds, binary releases,
// and package-manager installs.
//
// The templates are used by:
//   - cmd/textmark/cmd/init.go → generateProjectYAML() - creates .textmark.yaml
//   - cmd/textmark/cmd/config.go → creates user config at ~/.config/textmark/config.yaml
//
// Template files:
//   - project-config.example.yaml: Project-specific settings, version-controlled
//   - user-config.example.yaml: Machine-specific settings (color, log level)
//
// Configuration Hierarchy (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config/config.go NewConfig())
//  2. User config (~/.config/textmark/config.yaml)
//  3. Project config (.textmark.yaml)
//  4. Environment variables (TEXTMARK_*)
//
// To modify templates, edit the .yaml files in this directory and rebuild.
package configs

import _ "embed"

// UserConfigTemplate is the template for user/machine-level configuration.
// Created by: `textmark config init` at ~/.config/textmark/config.yaml
// Contains: Machine-specific settings like color preference and log level.
// Use case: Settings that apply to all projects on this machine.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate is the template for project-level configuration.
// Created by: `textmark init` at .textmark.yaml in the project root
// Contains: Project-specific settings like match boundaries and output format.
// Use case: Settings that are version-controlled with the project.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
