package spotlight

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tourFile is the YAML document schema understood by ParseTours:
//
//	tours:
//	  - id: onboarding
//	    enabled: true
//	    steps:
//	      - target: sidebar
//	        title: Navigation
//	        description: Everything starts here.
//	        side: right
//	        tooltipWidth: 320
//	        tooltipHeight: 180
//
// Targets are referenced by string; hosts report geometry for them with
// spotlight.StringTarget(name). Tours loaded from YAML have no
// applicability predicate.
type tourFile struct {
	Tours []tourYAML `yaml:"tours"`
}

type tourYAML struct {
	ID      string     `yaml:"id"`
	Enabled *bool      `yaml:"enabled"` // default true
	Steps   []stepYAML `yaml:"steps"`
}

type stepYAML struct {
	Target        string  `yaml:"target"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	Side          string  `yaml:"side"`          // default "bottom"
	TooltipWidth  float64 `yaml:"tooltipWidth"`  // default DefaultTooltipWidth
	TooltipHeight float64 `yaml:"tooltipHeight"` // default DefaultTooltipHeight
}

// ParseTours decodes tour definitions from YAML data. Missing optional
// fields get defaults: tours are enabled, steps prefer the bottom side
// and use the default tooltip dimensions.
func ParseTours(data []byte) ([]TourDefinition, error) {
	var file tourFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tour YAML: %w", err)
	}

	defs := make([]TourDefinition, 0, len(file.Tours))
	for i, t := range file.Tours {
		if t.ID == "" {
			return nil, fmt.Errorf("tour %d: id is required", i)
		}

		def := TourDefinition{
			ID:      t.ID,
			Enabled: t.Enabled == nil || *t.Enabled,
			Steps:   make([]TourStep, 0, len(t.Steps)),
		}

		for j, s := range t.Steps {
			if s.Target == "" {
				return nil, fmt.Errorf("tour %q step %d: target is required", t.ID, j)
			}

			side := SideBottom
			if s.Side != "" {
				parsed, err := ParseSide(s.Side)
				if err != nil {
					return nil, fmt.Errorf("tour %q step %d: %w", t.ID, j, err)
				}
				side = parsed
			}

			width := s.TooltipWidth
			if width == 0 {
				width = DefaultTooltipWidth
			}
			height := s.TooltipHeight
			if height == 0 {
				height = DefaultTooltipHeight
			}
			if width < 0 || height < 0 {
				return nil, fmt.Errorf("tour %q step %d: negative tooltip dimensions", t.ID, j)
			}

			def.Steps = append(def.Steps, TourStep{
				Target:        StringTarget(s.Target),
				Title:         s.Title,
				Description:   s.Description,
				PreferredSide: side,
				TooltipWidth:  width,
				TooltipHeight: height,
			})
		}

		defs = append(defs, def)
	}
	return defs, nil
}

// LoadTours reads r to the end and decodes the tour definitions it
// contains. See ParseTours for the schema.
func LoadTours(r io.Reader) ([]TourDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour configuration: %w", err)
	}
	return ParseTours(data)
}
