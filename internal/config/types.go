package config

import (
	"slices"
	"strings"
)

// RawConfig is the unvalidated input mapping collected from a YAML file,
// environment variables, CLI flags or the interactive wizard.
type RawConfig struct {
	ProjectName      string   `yaml:"project_name"`
	BundleIdentifier string   `yaml:"bundle_identifier"`
	OrgName          string   `yaml:"org_name"`
	Architecture     string   `yaml:"architecture"`
	StateManagement  string   `yaml:"state_management"`
	Features         []string `yaml:"features"`
	Modules          []string `yaml:"modules"`
}

// OrganizationIdentifier returns bundle_identifier, falling back to org_name.
func (r *RawConfig) OrganizationIdentifier() string {
	if id := strings.TrimSpace(r.BundleIdentifier); id != "" {
		return id
	}
	return strings.TrimSpace(r.OrgName)
}

// Overlay copies every field set in src onto r. A non-nil empty slice
// in src counts as set, so an explicit "features: []" clears the list.
func (r *RawConfig) Overlay(src *RawConfig) {
	if src == nil {
		return
	}
	if src.ProjectName != "" {
		r.ProjectName = src.ProjectName
	}
	if src.BundleIdentifier != "" {
		r.BundleIdentifier = src.BundleIdentifier
	}
	if src.OrgName != "" {
		r.OrgName = src.OrgName
	}
	if src.Architecture != "" {
		r.Architecture = src.Architecture
	}
	if src.StateManagement != "" {
		r.StateManagement = src.StateManagement
	}
	if src.Features != nil {
		r.Features = slices.Clone(src.Features)
	}
	if src.Modules != nil {
		r.Modules = slices.Clone(src.Modules)
	}
}

// Clone returns a deep copy of r.
func (r *RawConfig) Clone() *RawConfig {
	c := *r
	c.Features = slices.Clone(r.Features)
	c.Modules = slices.Clone(r.Modules)
	return &c
}

// Options tunes validation behavior.
type Options struct {
	// EnforceDefaultFeature inserts models.DefaultFeature into a non-empty
	// feature list that lacks it. When false only a note is emitted.
	EnforceDefaultFeature bool
}
