package component

import (
	"strings"
	"sync"
)

// Sticky keys used by the built-in components.
const (
	StickyCheckboxListClass = "checkboxlist.cssClass"
	StickyFAQClass          = "faq.cssClass"
)

// PageState is the state shared by every component rendered on one page: a
// running counter for unique element numbers, sticky values remembered from
// earlier components, and the scripts already emitted. Callers create one per
// page render and pass it to each component.
type PageState struct {
	mu      sync.Mutex
	counter int
	sticky  map[string]string
	scripts map[string]struct{}
}

// NewPageState returns an empty page state.
func NewPageState() *PageState {
	return &PageState{
		sticky:  make(map[string]string),
		scripts: make(map[string]struct{}),
	}
}

// Next advances the page counter and returns the new value, starting at 1.
func (p *PageState) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.counter++
	return p.counter
}

// Counter returns the current counter value without advancing it.
func (p *PageState) Counter() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counter
}

// Sticky remembers value under key when it is not blank and returns it;
// otherwise it returns the value remembered by an earlier call.
func (p *PageState) Sticky(key, value string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sticky == nil {
		p.sticky = make(map[string]string)
	}
	if strings.TrimSpace(value) != "" {
		p.sticky[key] = value
		return value
	}
	return p.sticky[key]
}

// Lookup returns the sticky value stored under key.
func (p *PageState) Lookup(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	value, ok := p.sticky[key]
	return value, ok
}

// MarkScript records key as emitted and reports whether this was the first
// time on the page.
func (p *PageState) MarkScript(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.scripts == nil {
		p.scripts = make(map[string]struct{})
	}
	if _, seen := p.scripts[key]; seen {
		return false
	}
	p.scripts[key] = struct{}{}
	return true
}

// ScriptMarker records which scripts a page already carries. *PageState and
// *PageTx satisfy it.
type ScriptMarker interface {
	MarkScript(key string) bool
}

// PageTx stages counter, sticky and script changes made while one component
// renders. Update applies them to the page only when the render succeeds.
type PageTx struct {
	page    *PageState
	counter int
	sticky  map[string]string
	scripts map[string]struct{}
}

// Update runs fn against a transaction over the page. Changes made through
// the transaction are applied when fn returns nil and dropped otherwise.
// The page is locked while fn runs, so fn must not call methods on p.
func (p *PageState) Update(fn func(tx *PageTx) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx := &PageTx{page: p, counter: p.counter}
	if err := fn(tx); err != nil {
		return err
	}

	p.counter = tx.counter
	if len(tx.sticky) > 0 {
		if p.sticky == nil {
			p.sticky = make(map[string]string, len(tx.sticky))
		}
		for key, value := range tx.sticky {
			p.sticky[key] = value
		}
	}
	if len(tx.scripts) > 0 {
		if p.scripts == nil {
			p.scripts = make(map[string]struct{}, len(tx.scripts))
		}
		for key := range tx.scripts {
			p.scripts[key] = struct{}{}
		}
	}
	return nil
}

// Next advances the staged counter and returns the new value.
func (tx *PageTx) Next() int {
	tx.counter++
	return tx.counter
}

// Sticky behaves like PageState.Sticky over the staged values.
func (tx *PageTx) Sticky(key, value string) string {
	if strings.TrimSpace(value) != "" {
		if tx.sticky == nil {
			tx.sticky = make(map[string]string)
		}
		tx.sticky[key] = value
		return value
	}
	if staged, ok := tx.sticky[key]; ok {
		return staged
	}
	return tx.page.sticky[key]
}

// MarkScript behaves like PageState.MarkScript over the staged scripts.
func (tx *PageTx) MarkScript(key string) bool {
	if _, seen := tx.page.scripts[key]; seen {
		return false
	}
	if _, seen := tx.scripts[key]; seen {
		return false
	}
	if tx.scripts == nil {
		tx.scripts = make(map[string]struct{})
	}
	tx.scripts[key] = struct{}{}
	return true
}
