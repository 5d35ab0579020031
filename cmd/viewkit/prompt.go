package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-viewkit/pkg/component"
	"github.com/goliatone/go-viewkit/pkg/component/checkboxlist"
	"github.com/goliatone/go-viewkit/pkg/component/faq"
)

var errAborted = errors.New("viewkit: prompt aborted")

// prompter abstracts the terminal so the completion flow can be tested
// without one.
type prompter interface {
	Input(ctx context.Context, message, def string, validate func(string) error) (string, error)
	Select(ctx context.Context, message string, options []string, def string) (string, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func newSurveyPrompter() prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(ctx context.Context, message, def string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(ctx context.Context, message string, options []string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if def != "" {
		prompt.Default = def
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// complete asks for the component name when it is empty and for every
// parameter the component needs that params does not carry yet.
func complete(ctx context.Context, p prompter, names []string, name string, params component.Params) (string, error) {
	var err error
	if strings.TrimSpace(name) == "" {
		name, err = p.Select(ctx, "Component", names, "")
		if err != nil {
			return "", err
		}
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case checkboxlist.Name:
		err = completeCheckboxList(ctx, p, params)
	case faq.Name:
		err = completeFAQ(ctx, p, params)
	}
	return name, err
}

func completeCheckboxList(ctx context.Context, p prompter, params component.Params) error {
	if !params.Has(checkboxlist.ParamTarget) {
		target, err := p.Input(ctx, "Field name", "", required)
		if err != nil {
			return err
		}
		params[checkboxlist.ParamTarget] = target
	}
	if !params.Has(checkboxlist.ParamSource) {
		raw, err := p.Input(ctx, "Items (comma separated)", "", required)
		if err != nil {
			return err
		}
		params[checkboxlist.ParamSource] = splitList(raw)
	}
	if !params.Has(checkboxlist.ParamColumns) {
		raw, err := p.Input(ctx, "Columns (0 for a single list)", "0", nonNegativeInt)
		if err != nil {
			return err
		}
		columns, _ := strconv.Atoi(strings.TrimSpace(raw))
		params[checkboxlist.ParamColumns] = columns
	}
	if !params.Has(checkboxlist.ParamKeepLabels) {
		split, err := p.Confirm(ctx, "Split PascalCase labels?", true)
		if err != nil {
			return err
		}
		params[checkboxlist.ParamKeepLabels] = !split
	}
	return nil
}

func completeFAQ(ctx context.Context, p prompter, params component.Params) error {
	if !params.Has(faq.ParamEntries) {
		path, err := p.Input(ctx, "FAQ entries file", "faq.yaml", required)
		if err != nil {
			return err
		}
		f, err := os.Open(strings.TrimSpace(path))
		if err != nil {
			return fmt.Errorf("open entries: %w", err)
		}
		defer f.Close()
		entries, err := faq.Load(f)
		if err != nil {
			return err
		}
		params[faq.ParamEntries] = entries
	}
	if !params.Has(faq.ParamListType) {
		listType, err := p.Select(ctx, "List type", []string{string(faq.ListNone), string(faq.ListUnordered), string(faq.ListOrdered)}, string(faq.ListNone))
		if err != nil {
			return err
		}
		params[faq.ParamListType] = listType
	}
	if !params.Has(faq.ParamToggle) {
		toggle, err := p.Select(ctx, "Toggle script", []string{string(faq.ToggleJQuery), string(faq.ToggleMooTools)}, string(faq.ToggleJQuery))
		if err != nil {
			return err
		}
		params[faq.ParamToggle] = toggle
	}
	return nil
}

func splitList(raw string) []any {
	var out []any
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func nonNegativeInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number of 0 or more")
	}
	return nil
}
