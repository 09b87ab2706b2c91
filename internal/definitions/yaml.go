// Package definitions implements the manifest parsers behind
// pkg/definitions. The public package re-exports the entry points.
package definitions

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-displaykit/pkg/content"
)

// manifest mirrors the YAML document shape:
//
//	types:
//	  - name: BlogPost
//	    displayName: Blog Post
//	    parts:
//	      - type: TitlePart
//	      - type: BodyPart
//	        name: Summary
//	        settings:
//	          editor: wysiwyg
type manifest struct {
	Types []manifestType `yaml:"types"`
}

type manifestType struct {
	Name        string            `yaml:"name"`
	DisplayName string            `yaml:"displayName"`
	Settings    map[string]string `yaml:"settings"`
	Parts       []manifestPart    `yaml:"parts"`
}

type manifestPart struct {
	Type     string            `yaml:"type"`
	Name     string            `yaml:"name"`
	Settings map[string]string `yaml:"settings"`
}

// ParseYAML converts a YAML content-type manifest into definitions.
func ParseYAML(data []byte) ([]*content.TypeDefinition, error) {
	if len(data) == 0 {
		return nil, errors.New("definitions: manifest is empty")
	}

	var doc manifest
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("definitions: parse manifest: %w", err)
	}
	if len(doc.Types) == 0 {
		return nil, errors.New("definitions: manifest declares no content types")
	}

	out := make([]*content.TypeDefinition, 0, len(doc.Types))
	for _, entry := range doc.Types {
		if entry.Name == "" {
			return nil, errors.New("definitions: content type entry missing name")
		}
		def := content.NewTypeDefinition(entry.Name).WithDisplayName(entry.DisplayName)
		for key, value := range entry.Settings {
			def.WithSetting(key, value)
		}
		for _, part := range entry.Parts {
			if part.Type == "" {
				return nil, fmt.Errorf("definitions: content type %q has a part without a type", entry.Name)
			}
			def.WithPart(part.Type, part.Name, part.Settings)
		}
		out = append(out, def)
	}
	return out, nil
}
