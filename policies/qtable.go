package policies

import (
	"encoding/json"
	"math"
	"os"
	"path"
)

// QTable maps (state hash, action hash) to a value estimate. Unseen pairs
// default to the value passed at lookup. The table only grows.
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

// NewQTableFromValues reconstructs a table from an external key-value
// representation, for loading persisted policies. The input is copied.
func NewQTableFromValues(values map[string]map[string]float64) *QTable {
	q := NewQTable()
	for s, actions := range values {
		row := make(map[string]float64, len(actions))
		for a, v := range actions {
			row[a] = v
		}
		q.table[s] = row
	}
	return q
}

func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

func (q *QTable) States() int {
	return len(q.table)
}

// Max returns the best action recorded for the state, def when none.
func (q *QTable) Max(state string, def float64) (string, float64) {
	row, ok := q.table[state]
	if !ok || len(row) == 0 {
		return "", def
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for a, val := range row {
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

// MaxAmong returns the best of the given actions, inserting def for
// unseen ones. Ties resolve to the earliest action in the list, so the
// caller's ordering decides.
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	if len(actions) == 0 {
		return "", def
	}
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for _, a := range actions {
		if _, ok := q.table[state][a]; !ok {
			q.table[state][a] = def
		}
		if val := q.table[state][a]; val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

// Values exposes the live table. Callers that need isolation should use
// Snapshot.
func (q *QTable) Values() map[string]map[string]float64 {
	return q.table
}

// Snapshot deep-copies the current table.
func (q *QTable) Snapshot() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(q.table))
	for s, actions := range q.table {
		row := make(map[string]float64, len(actions))
		for a, v := range actions {
			row[a] = v
		}
		out[s] = row
	}
	return out
}

// Record writes the table as JSON to the given path, creating parent
// directories as needed.
func (q *QTable) Record(savePath string) {
	if dir := path.Dir(savePath); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			os.MkdirAll(dir, os.ModePerm)
		}
	}
	bs, err := json.Marshal(q.table)
	if err != nil {
		return
	}
	os.WriteFile(savePath, bs, 0644)
}

// LoadQTable reads a table previously written by Record.
func LoadQTable(savePath string) (*QTable, error) {
	bs, err := os.ReadFile(savePath)
	if err != nil {
		return nil, err
	}
	values := make(map[string]map[string]float64)
	if err := json.Unmarshal(bs, &values); err != nil {
		return nil, err
	}
	return NewQTableFromValues(values), nil
}
