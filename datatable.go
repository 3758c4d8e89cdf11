// Package datatable renders typed records as an HTML table.
//
// A render pass takes an ordered slice of records and an ordered slice of
// column descriptors and produces a Table: one header cell per column and
// one row per record, each row holding one cell per column. The Table can
// then be written as HTML with WriteHTML.
package datatable

import (
	"errors"
	"fmt"
	"html/template"
	"reflect"
	"time"

	"github.com/3-lines-studio/datatable/internal/core"
)

var (
	// ErrUnknownColumn is returned when a column key names no field of the
	// record type and the column has no Value accessor.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrInvalidRecord is returned when a field has to be looked up on a
	// record that is not a struct or is a nil pointer.
	ErrInvalidRecord = errors.New("invalid record")
)

// Record is a value rendered as one table row. RowKey identifies the row
// and should be unique within a data slice.
type Record interface {
	RowKey() string
}

// ID is the set of identifier types accepted by Key.
type ID interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

// Key converts a numeric or string identifier into a row key.
func Key[K ID](id K) string {
	return fmt.Sprint(id)
}

// Column describes how one field of T is presented.
//
// Key names the field: the Go field name, or the name given in a `table`
// or `json` struct tag. Value, when set, replaces the field lookup.
// Render, when set, maps the value to what the cell displays; a
// template.HTML result is inserted verbatim, anything else is converted to
// its default string form and escaped.
type Column[T Record] struct {
	Key    string
	Header string
	Render func(value any) any
	Value  func(row T) any
}

type HeaderCell struct {
	Key   string
	Label string
}

type Cell struct {
	Key     string
	Content template.HTML
}

func (c Cell) String() string {
	return string(c.Content)
}

type Row struct {
	Key   string
	Cells []Cell
}

// Table is the output of one render pass.
type Table struct {
	Header []HeaderCell
	Rows   []Row
}

type accessor[T Record] struct {
	key      string
	value    func(T) any
	path     []int
	resolved bool
}

// Render builds the table for data and columns. Rows keep the order of
// data and cells keep the order of columns. Neither slice is modified.
func Render[T Record](data []T, columns []Column[T], opts ...Option) (*Table, error) {
	cfg := newConfig(opts)
	start := time.Now()

	accessors, err := resolveColumns(columns, cfg)
	if err != nil {
		return nil, err
	}

	table := &Table{
		Header: renderHeader(columns),
		Rows:   make([]Row, 0, len(data)),
	}

	for j, record := range data {
		row, err := renderRow(record, columns, accessors, cfg)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", j, err)
		}
		table.Rows = append(table.Rows, row)
	}

	cfg.logger.Debug("datatable render timing",
		"rows", len(data),
		"columns", len(columns),
		"duration", time.Since(start),
	)

	return table, nil
}

func resolveColumns[T Record](columns []Column[T], cfg *config) ([]accessor[T], error) {
	recordType := reflect.TypeOf((*T)(nil)).Elem()
	static := core.IsStructType(recordType)

	accessors := make([]accessor[T], len(columns))
	for i, column := range columns {
		accessors[i] = accessor[T]{key: column.Key, value: column.Value}
		if column.Value != nil || !static {
			continue
		}

		path, ok := core.ResolveField(recordType, column.Key)
		if !ok {
			if cfg.placeholder == nil {
				return nil, fmt.Errorf("%w: column %d %q on %s", ErrUnknownColumn, i, column.Key, recordType)
			}
			cfg.logger.Warn("datatable column does not match a field", "column", column.Key, "type", recordType.String())
		}
		accessors[i].path = path
		accessors[i].resolved = true
	}

	return accessors, nil
}

func renderHeader[T Record](columns []Column[T]) []HeaderCell {
	header := make([]HeaderCell, len(columns))
	for i, column := range columns {
		header[i] = HeaderCell{Key: column.Key, Label: column.Header}
	}
	return header
}

func renderRow[T Record](record T, columns []Column[T], accessors []accessor[T], cfg *config) (Row, error) {
	if isNil(record) {
		return Row{}, fmt.Errorf("%w: nil %T", ErrInvalidRecord, record)
	}

	row := Row{
		Key:   record.RowKey(),
		Cells: make([]Cell, len(columns)),
	}

	for i, column := range columns {
		value, found, err := accessors[i].lookup(record)
		if err != nil {
			return Row{}, fmt.Errorf("column %q: %w", column.Key, err)
		}

		var content template.HTML
		switch {
		case found:
			content = cellContent(value, column.Render)
		case cfg.placeholder != nil:
			content = template.HTML(template.HTMLEscapeString(*cfg.placeholder))
		default:
			return Row{}, fmt.Errorf("%w: column %d %q on %T", ErrUnknownColumn, i, column.Key, record)
		}

		row.Cells[i] = Cell{Key: column.Key, Content: content}
	}

	return row, nil
}

func (a accessor[T]) lookup(record T) (any, bool, error) {
	if a.value != nil {
		return a.value(record), true, nil
	}

	v := reflect.ValueOf(any(record))
	path := a.path
	if !a.resolved {
		if !core.IsStructType(v.Type()) {
			return nil, false, fmt.Errorf("%w: %T is not a struct", ErrInvalidRecord, record)
		}
		var ok bool
		path, ok = core.ResolveField(v.Type(), a.key)
		if !ok {
			return nil, false, nil
		}
	}
	if path == nil {
		return nil, false, nil
	}

	value, ok := core.FieldValue(v, path)
	return value, ok, nil
}

func isNil(record any) bool {
	v := reflect.ValueOf(record)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}

func cellContent(value any, render func(any) any) template.HTML {
	if render != nil {
		value = render(value)
	}
	if html, ok := value.(template.HTML); ok {
		return html
	}
	return template.HTML(template.HTMLEscapeString(core.DisplayString(value)))
}

// Text returns the cell content without markup.
func (c Cell) Text() string {
	return core.PlainText(c.Content)
}
