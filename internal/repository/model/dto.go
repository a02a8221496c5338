package model

import (
	"encoding/json"
	"fmt"

	"github.com/searchbeam/filterdsl"
)

// modelRecord is the JSON-serializable representation of a model descriptor.
type modelRecord struct {
	Fields map[string]string `json:"fields"`
}

// modelToJSON converts a field descriptor to its stored form.
func modelToJSON(m filterdsl.Model) ([]byte, error) {
	rec := modelRecord{Fields: make(map[string]string, m.Len())}
	for _, f := range m.Fields() {
		rec.Fields[f] = string(m.Type(f))
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal model: %w", err)
	}
	return data, nil
}

// modelFromJSON hydrates a field descriptor from its stored form.
func modelFromJSON(data []byte) (filterdsl.Model, error) {
	var rec modelRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return filterdsl.Model{}, fmt.Errorf("unmarshal model: %w", err)
	}
	fields := make(map[string]filterdsl.FieldType, len(rec.Fields))
	for name, typ := range rec.Fields {
		fields[name] = filterdsl.FieldType(typ)
	}
	return filterdsl.NewModel(fields), nil
}
