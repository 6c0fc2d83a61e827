package lunar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"slices"
)

// EntityDef is a data-driven entity template.
type EntityDef struct {
	Name         string         `json:"-"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	DrawPriority int            `json:"drawPriority"`
	Flags        EntityFlags    `json:"flags"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// EntityDefs maps template names to definitions.
type EntityDefs map[string]*EntityDef

// LoadEntityDefs parses entity templates from JSON of the form
//
//	{"entities": {"slime": {"width": 1, "height": 1, "drawPriority": 2,
//	  "flags": 3, "properties": {"hp": 5, "speed": 1.5, "hostile": true}}}}
//
// Whole numbers become int properties, other numbers float properties,
// booleans bool properties and anything else value properties.
func LoadEntityDefs(jsonData []byte) (EntityDefs, error) {
	var file struct {
		Entities map[string]*EntityDef `json:"entities"`
	}
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("lunar: failed to parse entity definitions: %w", err)
	}
	if file.Entities == nil {
		return nil, fmt.Errorf("lunar: entity definitions have no \"entities\" key")
	}
	for name, def := range file.Entities {
		if def == nil {
			return nil, fmt.Errorf("lunar: entity %q: definition is null", name)
		}
		if def.Width < 0 || def.Height < 0 {
			return nil, fmt.Errorf("lunar: entity %q: negative hitbox size %vx%v", name, def.Width, def.Height)
		}
		def.Name = name
	}
	return EntityDefs(file.Entities), nil
}

// Builder returns a new builder for the named template. If the name doesn't
// exist, it logs a warning in debug mode and returns an empty builder.
func (d EntityDefs) Builder(name string) *EntityBuilder {
	if def, ok := d[name]; ok {
		return def.Builder()
	}
	if globalDebug {
		log.Printf("lunar: entity definition %q not found, using empty builder", name)
	}
	return NewEntityBuilder()
}

// Builder creates a builder configured from the definition. Properties are
// added in name order. Callbacks are not part of a definition; add them to
// the returned builder.
func (def *EntityDef) Builder() *EntityBuilder {
	b := NewEntityBuilder()
	b.SetHitboxSize(def.Width, def.Height)
	b.SetDrawPriority(def.DrawPriority)
	b.SetFlags(def.Flags)
	for _, name := range slices.Sorted(maps.Keys(def.Properties)) {
		b.SetProperty(name, jsonProperty(def.Properties[name]))
	}
	return b
}

// jsonProperty converts a decoded JSON value to a Property.
func jsonProperty(v any) Property {
	switch v := v.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return IntProperty(n)
		}
		if f, err := v.Float64(); err == nil {
			return FloatProperty(f)
		}
		return ValueProperty(v.String())
	case bool:
		return BoolProperty(v)
	default:
		return ValueProperty(v)
	}
}
