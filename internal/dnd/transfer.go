// Package dnd models the drag-and-drop channel between a drag source and a
// drop target. Only plain strings cross it: a source writes a value under a
// media type, the target reads it back. Nothing else about the dragged thing
// is shared.
package dnd

// MediaTypeText is the only media type drop targets on the board accept
const MediaTypeText = "text/plain"

// Effect is the kind of operation a drag offers or a drop performed
type Effect string

const (
	EffectNone Effect = "none"
	EffectCopy Effect = "copy"
	EffectLink Effect = "link"
	EffectMove Effect = "move"
)

// DataTransfer carries the drag payload. Types keeps the order in which
// formats were first set.
type DataTransfer struct {
	types []string
	data  map[string]string

	// EffectAllowed is set by the source on drag start
	EffectAllowed Effect
	// DropEffect is set by the session once the drag ends
	DropEffect Effect
}

// NewDataTransfer returns an empty payload
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{
		data:          map[string]string{},
		EffectAllowed: EffectNone,
		DropEffect:    EffectNone,
	}
}

// SetData stores value under format
func (d *DataTransfer) SetData(format, value string) {
	if _, ok := d.data[format]; !ok {
		d.types = append(d.types, format)
	}
	d.data[format] = value
}

// GetData returns the value stored under format, or "" when unset
func (d *DataTransfer) GetData(format string) string {
	return d.data[format]
}

// Types returns the offered formats in the order they were set
func (d *DataTransfer) Types() []string {
	out := make([]string, len(d.types))
	copy(out, d.types)
	return out
}

// FirstType returns the first offered format, or "" when nothing is set
func (d *DataTransfer) FirstType() string {
	if len(d.types) == 0 {
		return ""
	}
	return d.types[0]
}
