package progression

import (
	"encoding/json"
	"io"

	"github.com/KirkDiggler/destiny-api/internal/errors"
)

// document is the persisted shape of the table catalog
type document struct {
	Tables []Table `json:"tables"`
}

// WriteJSON writes tables as an indented JSON document. Output is byte
// stable for equal input.
func WriteJSON(w io.Writer, tables []Table) error {
	if tables == nil {
		tables = []Table{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Tables: tables}); err != nil {
		return errors.Wrap(err, "failed to encode progression tables")
	}
	return nil
}

// ReadJSON decodes a document written by WriteJSON
func ReadJSON(r io.Reader) ([]Table, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.InvalidArgumentf("invalid progression table document: %v", err)
	}
	return doc.Tables, nil
}
