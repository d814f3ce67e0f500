package model

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Artifact is one file written by a generation run.
type Artifact struct {
	// Name is the base file name, e.g. "DELIVERY_SUMMARY.txt".
	Name string `json:"name"`

	// Path is where the file was written.
	Path string `json:"path"`

	// Bytes is the size of the written content.
	Bytes int `json:"bytes"`

	// Digest is the hex SHA3-256 of the content.
	Digest string `json:"digest"`
}

// NewArtifact describes content written to path.
func NewArtifact(name, path string, content []byte) Artifact {
	return Artifact{
		Name:   name,
		Path:   path,
		Bytes:  len(content),
		Digest: Digest(content),
	}
}

// Digest returns the hex encoded SHA3-256 of content.
func Digest(content []byte) string {
	sum := sha3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Run is one invocation of the generators.
type Run struct {
	// ID uniquely identifies the run in the history store.
	ID string `json:"id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"startedAt"`

	// OutputDir is the directory artifacts were written to.
	OutputDir string `json:"outputDir"`

	// Artifacts are the files written, in generation order.
	Artifacts []Artifact `json:"artifacts"`
}

// NewRun starts a run writing into outputDir.
func NewRun(outputDir string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		OutputDir: outputDir,
	}
}

// AddArtifact records a written file.
func (r *Run) AddArtifact(a Artifact) {
	r.Artifacts = append(r.Artifacts, a)
}

// Artifact returns the recorded artifact with the given name.
func (r *Run) Artifact(name string) (Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Name == name {
			return a, true
		}
	}
	return Artifact{}, false
}
