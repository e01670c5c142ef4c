package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed resume.yaml
var embeddedResume []byte

type Profile struct {
	Name     string   `yaml:"name" json:"name"`
	Handle   string   `yaml:"handle" json:"handle"`
	Headline string   `yaml:"headline" json:"headline"`
	Roles    []string `yaml:"roles" json:"roles"`
	Email    string   `yaml:"email" json:"email"`
	Website  string   `yaml:"website" json:"website"`
	GitHub   string   `yaml:"github" json:"github"`
	LinkedIn string   `yaml:"linkedin" json:"linkedin"`
}

type AboutSection struct {
	Title     string   `yaml:"title" json:"title"`
	Lines     []string `yaml:"lines" json:"lines"`
	Highlight string   `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}

// AboutData holds the summary paragraphs and sections behind the about command.
type AboutData struct {
	Summary  []string       `yaml:"summary" json:"summary"`
	Sections []AboutSection `yaml:"sections" json:"sections"`
	Closing  string         `yaml:"closing" json:"closing"`
}

type Highlight struct {
	Title  string `yaml:"title" json:"title"`
	Detail string `yaml:"detail" json:"detail"`
}

type Job struct {
	Company      string      `yaml:"company" json:"company"`
	Role         string      `yaml:"role" json:"role"`
	Period       string      `yaml:"period" json:"period"`
	Location     string      `yaml:"location" json:"location"`
	Size         string      `yaml:"size" json:"size"`
	Tagline      string      `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Highlights   []Highlight `yaml:"highlights" json:"highlights"`
	Technologies []string    `yaml:"technologies" json:"technologies"`
}

type Degree struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Period      string `yaml:"period" json:"period"`
	Location    string `yaml:"location" json:"location"`
	Note        string `yaml:"note" json:"note"`
}

type SkillLevel struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

type SkillCategory struct {
	Category string       `yaml:"category" json:"category"`
	Skills   []SkillLevel `yaml:"skills" json:"skills"`
}

type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Demo         string   `yaml:"demo" json:"demo"`
	Repo         string   `yaml:"repo" json:"repo"`
}

// Series is one chart dataset from the dashboard.
type Series struct {
	Title  string   `yaml:"title" json:"title"`
	Labels []string `yaml:"labels" json:"labels"`
	Values []int    `yaml:"values" json:"values"`
}

// DashboardData groups the series the dashboard charts.
type DashboardData struct {
	Performance Series   `yaml:"performance" json:"performance"`
	Charts      []Series `yaml:"charts" json:"charts"`
}

// Resume is the complete canned data set.
type Resume struct {
	Profile     Profile         `yaml:"profile" json:"profile"`
	Banner      string          `yaml:"banner" json:"banner"`
	About       AboutData       `yaml:"about" json:"about"`
	Experience  []Job           `yaml:"experience" json:"experience"`
	Education   []Degree        `yaml:"education" json:"education"`
	Skills      []string        `yaml:"skills" json:"skills"`
	SkillLevels []SkillCategory `yaml:"skill_levels" json:"skill_levels"`
	Projects    []Project       `yaml:"projects" json:"projects"`
	Dashboard   DashboardData   `yaml:"dashboard" json:"dashboard"`
}

var (
	defaultOnce   sync.Once
	defaultResume *Resume
	defaultErr    error
)

// Parse decodes resume YAML and checks the fields the builders rely on.
func Parse(data []byte) (*Resume, error) {
	var r Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Default returns the embedded resume, parsed once.
func Default() (*Resume, error) {
	defaultOnce.Do(func() {
		defaultResume, defaultErr = Parse(embeddedResume)
	})
	return defaultResume, defaultErr
}

// MustDefault panics if the embedded resume is malformed.
func MustDefault() *Resume {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Resume) validate() error {
	if r.Profile.Name == "" {
		return errors.New("resume: profile name is required")
	}
	if r.Banner == "" {
		return errors.New("resume: banner is required")
	}
	for _, series := range append([]Series{r.Dashboard.Performance}, r.Dashboard.Charts...) {
		if len(series.Labels) != len(series.Values) {
			return fmt.Errorf("resume: dashboard series %q has %d labels and %d values", series.Title, len(series.Labels), len(series.Values))
		}
	}
	return nil
}
