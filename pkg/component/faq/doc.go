// Package faq renders collapsible question and answer blocks.
//
// Every entry gets a page-unique anchor drawn from the component.PageState
// counter so several FAQ components can share one page. Clicking a question
// toggles its answer through a small client-side script for either jQuery or
// MooTools, emitted once per page. Entries can be wrapped in an ordered or
// unordered list and loaded from YAML files.
package faq
