package component

// Canonical component names used by the default registry.
const (
	NameCheckboxList = "checkboxlist"
	NameFAQ          = "faq"
)
