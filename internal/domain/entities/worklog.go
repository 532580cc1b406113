package entities

import (
	"bytes"
	"encoding/json"
)

// MaintenanceRow is one area entry of the air-conditioning maintenance log
// captured by the foreign-service form.
type MaintenanceRow struct {
	Area                 string `json:"area"`
	LimpiezaFiltros      string `json:"limpiezaFiltros"`
	LimpiezaCondensadora string `json:"limpiezaCondensadora"`
	PresionGas           string `json:"presionGas"`
	LimpiezaEvaporadora  string `json:"limpiezaEvaporadora"`
	RevisionElectrica    string `json:"revisionElectrica"`
	Observaciones        string `json:"observaciones"`
}

// WorkLog is the "trabajos realizados" field. Historically it was stored in
// three shapes: a list of free-text task strings, a list of maintenance rows,
// or either of those wrapped as {"registros": [...]}. Unmarshalling
// normalizes all of them into exactly one of the two canonical variants, so
// the shape is decided once at load time and never re-inspected downstream.
//
// Classification rule: the log is a maintenance log iff its first element is
// an object carrying any of the keys "area", "presionGas" or
// "limpiezaFiltros". Anything else is a plain task list.
//
// Normalization never fails: unknown shapes degrade to their compact JSON
// text as a task entry, and a non-array value becomes an empty plain log.

type WorkLog struct {
	Maintenance bool
	Tasks       []string
	Rows        []MaintenanceRow
}

// PlainWorkLog builds a standard-repair work log.
func PlainWorkLog(tasks ...string) WorkLog {
	return WorkLog{Tasks: tasks}
}

// MaintenanceWorkLog builds a foreign-service work log.
func MaintenanceWorkLog(rows ...MaintenanceRow) WorkLog {
	return WorkLog{Maintenance: true, Rows: rows}
}

func (w WorkLog) IsEmpty() bool {
	if w.Maintenance {
		return len(w.Rows) == 0
	}
	return len(w.Tasks) == 0
}

// MarshalJSON always emits the flat canonical sequence, never the legacy
// wrapper shape.
func (w WorkLog) MarshalJSON() ([]byte, error) {
	if w.Maintenance {
		if w.Rows == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(w.Rows)
	}
	if w.Tasks == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.Tasks)
}

func (w *WorkLog) UnmarshalJSON(data []byte) error {
	*w = NormalizeWorkLog(data)
	return nil
}

// NormalizeWorkLog reconciles any historical shape of the work-performed
// field into a canonical WorkLog. It is best-effort by design: it never
// returns an error.
func NormalizeWorkLog(raw json.RawMessage) WorkLog {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return WorkLog{}
	}

	// Legacy wrapper: {"registros": [...]}
	if trimmed[0] == '{' {
		var wrapper struct {
			Registros json.RawMessage `json:"registros"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil || len(wrapper.Registros) == 0 {
			return WorkLog{}
		}
		return NormalizeWorkLog(wrapper.Registros)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return WorkLog{}
	}
	if len(elems) == 0 {
		return WorkLog{}
	}

	if isMaintenanceElement(elems[0]) {
		rows := make([]MaintenanceRow, 0, len(elems))
		for _, e := range elems {
			var row MaintenanceRow
			// Malformed rows degrade to a stringified Area instead of
			// aborting the whole log.
			if err := json.Unmarshal(e, &row); err != nil {
				row = MaintenanceRow{Area: compactJSON(e)}
			}
			rows = append(rows, row)
		}
		return WorkLog{Maintenance: true, Rows: rows}
	}

	tasks := make([]string, 0, len(elems))
	for _, e := range elems {
		var s string
		if err := json.Unmarshal(e, &s); err != nil {
			s = compactJSON(e)
		}
		tasks = append(tasks, s)
	}
	return WorkLog{Tasks: tasks}
}

func isMaintenanceElement(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return false
	}
	for _, key := range []string{"area", "presionGas", "limpiezaFiltros"} {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
