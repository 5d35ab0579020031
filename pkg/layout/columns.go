package layout

import (
	"errors"
	"html"
	"io"
	"math"
	"strings"
)

// ErrInvalidColumnCount is returned when a layout is requested with fewer than
// one column.
var ErrInvalidColumnCount = errors.New("layout: column count must be positive")

// Slot places a single item inside the column layout.
type Slot struct {
	// Index is the item's position in the source list.
	Index int
	// Column is the zero-based column holding the item.
	Column int
	// Position is the one-based row of the item inside its column.
	Position int
	// StartColumn marks the first item of a column.
	StartColumn bool
	// EndColumn marks the last item of a column, including a short final one.
	EndColumn bool
}

// ItemsPerColumn returns ceil(itemCount/columnCount), the capacity of every
// column but the trailing ones.
func ItemsPerColumn(itemCount, columnCount int) int {
	if itemCount <= 0 || columnCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(itemCount) / float64(columnCount)))
}

// Plan walks itemCount items in order and reports where each one lands.
// It returns nil when there is nothing to place or columnCount is not
// positive.
func Plan(itemCount, columnCount int) []Slot {
	perColumn := ItemsPerColumn(itemCount, columnCount)
	if perColumn == 0 {
		return nil
	}

	slots := make([]Slot, 0, itemCount)
	position, column := 1, 0
	for index := 0; index < itemCount; index++ {
		slot := Slot{
			Index:       index,
			Column:      column,
			Position:    position,
			StartColumn: position == 1,
		}
		if position == perColumn || index+1 == itemCount {
			slot.EndColumn = true
			position = 1
			column++
		} else {
			position++
		}
		slots = append(slots, slot)
	}
	return slots
}

// Sizes reports how many items each of the columnCount columns receives.
// Columns the walk never reaches are reported as zero.
func Sizes(itemCount, columnCount int) []int {
	if columnCount <= 0 {
		return nil
	}
	sizes := make([]int, columnCount)
	for _, slot := range Plan(itemCount, columnCount) {
		sizes[slot.Column]++
	}
	return sizes
}

// Assign splits items into columns following Plan. Only columns holding at
// least one item are returned.
func Assign[T any](items []T, columnCount int) [][]T {
	slots := Plan(len(items), columnCount)
	if len(slots) == 0 {
		return nil
	}

	columns := make([][]T, 0, columnCount)
	for _, slot := range slots {
		if slot.StartColumn {
			columns = append(columns, make([]T, 0, ItemsPerColumn(len(items), columnCount)))
		}
		last := len(columns) - 1
		columns[last] = append(columns[last], items[slot.Index])
	}
	return columns
}

// Markup holds the boundary fragments written around the layout and each
// column.
type Markup struct {
	TableOpen   string
	TableClose  string
	ColumnOpen  string
	ColumnClose string
}

// DefaultMarkup lays the columns out as cells of a single table row.
var DefaultMarkup = Markup{
	TableOpen:   "<table><tr>",
	TableClose:  "</tr></table>",
	ColumnOpen:  "<td>",
	ColumnClose: "</td>",
}

// TableMarkup returns DefaultMarkup with a class attribute on the table.
func TableMarkup(class string) Markup {
	class = strings.TrimSpace(class)
	if class == "" {
		return DefaultMarkup
	}
	m := DefaultMarkup
	m.TableOpen = `<table class="` + html.EscapeString(class) + `"><tr>`
	return m
}

// ItemFunc writes the markup of the item described by slot.
type ItemFunc func(w io.Writer, slot Slot) error

// Render writes the table boundaries, the column boundaries and, in between,
// whatever item writes for each slot. With no items only the table open and
// close fragments are written.
func Render(w io.Writer, itemCount, columnCount int, m Markup, item ItemFunc) error {
	if columnCount <= 0 {
		return ErrInvalidColumnCount
	}
	if w == nil {
		return errors.New("layout: writer is nil")
	}

	if _, err := io.WriteString(w, m.TableOpen); err != nil {
		return err
	}
	for _, slot := range Plan(itemCount, columnCount) {
		if slot.StartColumn {
			if _, err := io.WriteString(w, m.ColumnOpen); err != nil {
				return err
			}
		}
		if item != nil {
			if err := item(w, slot); err != nil {
				return err
			}
		}
		if slot.EndColumn {
			if _, err := io.WriteString(w, m.ColumnClose); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, m.TableClose)
	return err
}
