package preview

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-viewkit/pkg/component"
)

// QueryParams converts a query string into component parameters. Keys seen
// more than once, and keys listed in lists, become []any.
func QueryParams(values url.Values, lists []string) component.Params {
	forced := make(map[string]struct{}, len(lists))
	for _, name := range lists {
		forced[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	params := make(component.Params, len(values))
	for key, raw := range values {
		if len(raw) == 0 {
			continue
		}
		_, isList := forced[strings.ToLower(key)]
		if !isList && len(raw) == 1 {
			params[key] = raw[0]
			continue
		}
		items := make([]any, 0, len(raw))
		for _, value := range raw {
			if isList && len(raw) == 1 {
				for _, part := range strings.Split(value, ",") {
					if part = strings.TrimSpace(part); part != "" {
						items = append(items, part)
					}
				}
				continue
			}
			items = append(items, value)
		}
		params[key] = items
	}
	return params
}

// BodyParams decodes a YAML or JSON mapping into component parameters.
func BodyParams(r io.Reader) (component.Params, error) {
	if r == nil {
		return component.Params{}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("preview: read body: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return component.Params{}, nil
	}
	var params map[string]any
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("preview: decode body: %w", err)
	}
	if params == nil {
		params = map[string]any{}
	}
	return component.Params(params), nil
}
