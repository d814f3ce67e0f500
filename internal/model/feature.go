package model

// FeatureFlag is one row of the feature highlights.
type FeatureFlag struct {
	Name    string `yaml:"name" json:"name"`
	Summary string `yaml:"summary" json:"summary"`
	Detail  string `yaml:"detail" json:"detail"`
}

// Improvement is one entry of the design improvement list.
type Improvement struct {
	Text string `yaml:"text" json:"text"`

	// Highlight marks improvements echoed on the inventory console.
	Highlight bool `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}
