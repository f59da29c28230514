package descriptors

import "encoding/json"

//JSON shape for a result table, so tables can be shipped to plotting
//or scripting tools.
type jsonTable struct {
	Names []string  `json:"names"`
	Rows  [][]Value `json:"rows"`
}

func marshalTable(T *Table) ([]byte, error) {
	return json.Marshal(jsonTable{Names: T.names, Rows: T.rows})
}
