package datatable

import (
	"html/template"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/3-lines-studio/datatable/internal/core"
	"github.com/3-lines-studio/datatable/internal/markdown"
)

// Markdown renders string values as Markdown. Raw HTML in the source is
// not passed through. Non-string values use the default string form.
func Markdown() func(any) any {
	return func(value any) any {
		src, ok := value.(string)
		if !ok {
			return core.DisplayString(value)
		}
		html, err := markdown.Render(src)
		if err != nil {
			return src
		}
		return html
	}
}

// Number formats integers and floats with thousands separators.
func Number() func(any) any {
	return func(value any) any {
		switch v := value.(type) {
		case int:
			return humanize.Comma(int64(v))
		case int8:
			return humanize.Comma(int64(v))
		case int16:
			return humanize.Comma(int64(v))
		case int32:
			return humanize.Comma(int64(v))
		case int64:
			return humanize.Comma(v)
		case uint8:
			return humanize.Comma(int64(v))
		case uint16:
			return humanize.Comma(int64(v))
		case uint32:
			return humanize.Comma(int64(v))
		case uint:
			if uint64(v) <= math.MaxInt64 {
				return humanize.Comma(int64(v))
			}
		case uint64:
			if v <= math.MaxInt64 {
				return humanize.Comma(int64(v))
			}
		case float32:
			return humanize.Commaf(float64(v))
		case float64:
			return humanize.Commaf(v)
		}
		return core.DisplayString(value)
	}
}

// Bytes formats non-negative integers as SI byte sizes ("82 kB").
func Bytes() func(any) any {
	return func(value any) any {
		switch v := value.(type) {
		case uint64:
			return humanize.Bytes(v)
		case uint:
			return humanize.Bytes(uint64(v))
		case uint32:
			return humanize.Bytes(uint64(v))
		case int:
			if v >= 0 {
				return humanize.Bytes(uint64(v))
			}
		case int64:
			if v >= 0 {
				return humanize.Bytes(uint64(v))
			}
		case int32:
			if v >= 0 {
				return humanize.Bytes(uint64(v))
			}
		}
		return core.DisplayString(value)
	}
}

// Bool displays yes for true and no for false.
func Bool(yes, no string) func(any) any {
	return func(value any) any {
		b, ok := value.(bool)
		if !ok {
			return core.DisplayString(value)
		}
		if b {
			return yes
		}
		return no
	}
}

// Raw marks string values as trusted markup. Only use it for columns whose
// content the host controls.
func Raw() func(any) any {
	return func(value any) any {
		if s, ok := value.(string); ok {
			return template.HTML(s)
		}
		return value
	}
}
