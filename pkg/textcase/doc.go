// Package textcase turns compact identifier-style labels into readable
// phrases for display in rendered markup.
package textcase
