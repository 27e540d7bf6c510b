package mpath

import (
	"encoding/json"
)

type attrJSON struct {
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"`
}

type elementJSON struct {
	Name  string     `json:"name"`
	Attrs []attrJSON `json:"attrs,omitempty"`
}

// MarshalJSON encodes the element with bare flags as attributes
// carrying no value field, so `;note=` and `;note` stay distinct.
func (e *Element) MarshalJSON() ([]byte, error) {
	ej := &elementJSON{Name: e.Name}
	for _, a := range e.Attrs {
		aj := attrJSON{Key: a.Key}
		if a.HasValue {
			v := a.Value
			aj.Value = &v
		}
		ej.Attrs = append(ej.Attrs, aj)
	}
	return json.Marshal(ej)
}

func (e *Element) UnmarshalJSON(d []byte) error {
	tmp := &elementJSON{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	e.Name = tmp.Name
	e.Attrs = nil
	for _, aj := range tmp.Attrs {
		a := Attr{Key: aj.Key}
		if aj.Value != nil {
			a.Value = *aj.Value
			a.HasValue = true
		}
		e.setAttr(a)
	}
	return nil
}
