package file

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	repo "smart-task-assistant/internal/task/repository"
)

// titleDocument is the mapping form of a title file:
//
//	tasks:
//	  - Write blog on machine learning trends
//	  - Research deep learning techniques
//
// A bare YAML sequence of strings is accepted as well.
type titleDocument struct {
	Tasks []string `yaml:"tasks"`
}

// LoadTitles reads task titles from the YAML file at path. Blank entries are dropped.
func (r *implTitleSource) LoadTitles(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.l.Errorf(ctx, "%s read %s: %v", r.dsn("LoadTitles"), path, err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}

	titles, err := decodeTitles(data)
	if err != nil {
		r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("LoadTitles"), path, err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	return titles, nil
}

func decodeTitles(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return []string{}, nil
	}

	var raw []string
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raw); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc titleDocument
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		raw = doc.Tasks
	default:
		return nil, fmt.Errorf("expected a list of titles or a tasks mapping, line %d", root.Line)
	}

	titles := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}
	return titles, nil
}
