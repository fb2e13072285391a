package manifest

import "github.com/Quincunx271/meta-dds/internal/deps"

// Manifest is a fully validated meta_package.json5 document. It is built in
// one Load call and never mutated afterwards.
type Manifest struct {
	// Depends holds the plain `depends` dependencies, if any.
	Depends []deps.Dependency `json:"depends" yaml:"depends"`
	// TestDepends holds the plain `test_depends` dependencies, if any.
	TestDepends []deps.Dependency `json:"test_depends" yaml:"test_depends"`
	// MetaDepends holds the `meta_dds.depends` dependencies, if any.
	MetaDepends []MetaDependency `json:"meta_depends" yaml:"meta_depends"`
	// MetaTestDepends holds the `meta_dds.test_depends` dependencies, if any.
	MetaTestDepends []MetaDependency `json:"meta_test_depends" yaml:"meta_test_depends"`
}

// MetaDependency is a dependency from a meta_dds list, plus any passthrough
// build-configuration pairs declared alongside it.
type MetaDependency struct {
	deps.Dependency `yaml:",inline"`
	// Configuration keeps the extra entries of an object-form dependency in
	// document order. Duplicate keys are preserved as separate pairs.
	Configuration []ConfigPair `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// ConfigPair is one passthrough key/value configuration entry.
type ConfigPair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}
