package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON-backed columns. Postgres text columns holding a JSON document, so the
// nested shapes from the API survive a round trip without extra join tables.

func jsonValue(v any) (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst any, src any) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// StringList stores a list of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return jsonValue([]string(l))
}

func (l *StringList) Scan(src any) error {
	return jsonScan(l, src)
}

func (StringList) GormDataType() string {
	return "text"
}

// CastList stores movie cast credits as a JSON text column.
type CastList []Cast

func (l CastList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return jsonValue([]Cast(l))
}

func (l *CastList) Scan(src any) error {
	return jsonScan(l, src)
}

func (CastList) GormDataType() string {
	return "text"
}

// CrewList stores movie crew credits as a JSON text column.
type CrewList []Crew

func (l CrewList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return jsonValue([]Crew(l))
}

func (l *CrewList) Scan(src any) error {
	return jsonScan(l, src)
}

func (CrewList) GormDataType() string {
	return "text"
}

// ProducerList stores producer credits as a JSON text column.
type ProducerList []Producer

func (l ProducerList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return jsonValue([]Producer(l))
}

func (l *ProducerList) Scan(src any) error {
	return jsonScan(l, src)
}

func (ProducerList) GormDataType() string {
	return "text"
}
