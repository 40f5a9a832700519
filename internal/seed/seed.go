// Package seed loads an initial set of projects from YAML.
//
//	projects:
//	  - title: Build site
//	    description: Landing page and docs
//	    people: 2
//	    status: finished
package seed

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/dragboard/internal/models"
	"gopkg.in/yaml.v3"
)

// Entry is one project in a seed file
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	People      int    `yaml:"people"`
	Status      string `yaml:"status"`
}

// File is a parsed seed file
type File struct {
	Projects []Entry `yaml:"projects"`
}

// Adder is the subset of the registry a seed needs
type Adder interface {
	AddProject(title, description string, people int) *models.Project
	MoveProject(id string, status models.ProjectStatus) bool
}

// Load reads and validates a seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, e := range f.Projects {
		if _, err := models.ParseStatus(e.Status); err != nil {
			return nil, fmt.Errorf("seed project %d (%q): %w", i, e.Title, err)
		}
	}
	return &f, nil
}

// Apply adds every entry in file order, moving entries that are not active
// into their lane. It returns the number of projects added.
func (f *File) Apply(reg Adder) int {
	for _, e := range f.Projects {
		p := reg.AddProject(e.Title, e.Description, e.People)
		// Parse validated the status already
		status, _ := models.ParseStatus(e.Status)
		if status != models.StatusActive {
			reg.MoveProject(p.ID, status)
		}
	}
	return len(f.Projects)
}
