package faq

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/component"
)

const (
	entryClass    = "faq"
	listClass     = "faq-list"
	questionClass = "faq-question"
	answerClass   = "faq-answer"
)

// Descriptor registers the component with a component.Registry.
func Descriptor() component.Descriptor {
	return component.Descriptor{
		Name:     Name,
		Renderer: Renderer,
	}
}

// Renderer reads Options from params and renders them.
func Renderer(buf *bytes.Buffer, params component.Params, data component.RenderData) error {
	opts, err := FromParams(params)
	if err != nil {
		return err
	}
	return Render(buf, opts, data)
}

// Render writes the FAQ blocks described by opts into buf. Nothing is written
// when there are no entries.
func Render(buf *bytes.Buffer, opts Options, data component.RenderData) error {
	if buf == nil {
		return fmt.Errorf("faq: output buffer is nil")
	}
	listType, err := ParseListType(string(opts.ListType))
	if err != nil {
		return err
	}
	toggle, err := ParseToggle(string(opts.Toggle))
	if err != nil {
		return err
	}
	for i, entry := range opts.Entries {
		if strings.TrimSpace(entry.Question) == "" {
			return component.InvalidConfiguration(Name, ParamEntries, "entry %d has no question", i)
		}
	}
	if len(opts.Entries) == 0 {
		return nil
	}

	data.Page = data.State()

	var out bytes.Buffer
	err = data.Page.Update(func(tx *component.PageTx) error {
		blockClass := entryClass
		if class := tx.Sticky(component.StickyFAQClass, strings.TrimSpace(opts.CSSClass)); class != "" {
			blockClass += " " + class
		}

		var blocks bytes.Buffer
		if listType != ListNone {
			blocks.WriteString(`<` + string(listType) + ` class="` + listClass + `">`)
		}
		for index, entry := range opts.Entries {
			number := tx.Next()
			id := strings.TrimSpace(entry.ID)
			if id == "" {
				id = "faq-" + strconv.Itoa(number)
			}
			answerID := id + "-answer"

			ctx := map[string]any{
				"id":       id,
				"answerId": answerID,
				"question": entry.Question,
				"answer":   sanitizeAnswer(entry.Answer),
				"index":    index,
				"number":   number,
				"expanded": opts.Expanded,
			}

			if listType != ListNone {
				blocks.WriteString(`<li>`)
			}
			blocks.WriteString(`<div class="`)
			blocks.WriteString(html.EscapeString(blockClass))
			blocks.WriteString(`" id="`)
			blocks.WriteString(html.EscapeString(id))
			blocks.WriteString(`">`)

			if err := writeQuestion(&blocks, opts, data, ctx); err != nil {
				return err
			}
			if err := writeAnswer(&blocks, opts, data, ctx); err != nil {
				return err
			}

			blocks.WriteString(`</div>`)
			if listType != ListNone {
				blocks.WriteString(`</li>`)
			}
		}
		if listType != ListNone {
			blocks.WriteString(`</` + string(listType) + `>`)
		}

		// Scripts are marked last so a failed entry leaves them for the next FAQ.
		for _, script := range toggleScripts(toggle, data) {
			component.IncludeScript(&out, data, tx, script)
		}
		out.Write(blocks.Bytes())
		return nil
	})
	if err != nil {
		return err
	}

	buf.Write(out.Bytes())
	return nil
}

func writeQuestion(out *bytes.Buffer, opts Options, data component.RenderData, ctx map[string]any) error {
	if opts.QuestionSection != "" {
		rendered, err := component.RenderSection(data, Name, ParamQuestionSection, opts.QuestionSection, ctx)
		if err != nil {
			return err
		}
		out.WriteString(rendered)
		return nil
	}

	answerID := html.EscapeString(ctx["answerId"].(string))
	out.WriteString(`<div class="` + questionClass + `"><a href="#`)
	out.WriteString(answerID)
	out.WriteString(`" data-faq-toggle="`)
	out.WriteString(answerID)
	out.WriteString(`">`)
	out.WriteString(html.EscapeString(ctx["question"].(string)))
	out.WriteString(`</a></div>`)
	return nil
}

func writeAnswer(out *bytes.Buffer, opts Options, data component.RenderData, ctx map[string]any) error {
	if opts.AnswerSection != "" {
		rendered, err := component.RenderSection(data, Name, ParamAnswerSection, opts.AnswerSection, ctx)
		if err != nil {
			return err
		}
		out.WriteString(rendered)
		return nil
	}

	out.WriteString(`<div class="` + answerClass + `" id="`)
	out.WriteString(html.EscapeString(ctx["answerId"].(string)))
	out.WriteString(`"`)
	if !opts.Expanded {
		out.WriteString(` style="display:none"`)
	}
	out.WriteString(`>`)
	out.WriteString(ctx["answer"].(string))
	out.WriteString(`</div>`)
	return nil
}
