package report

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// Encode serializes the document collection as one UTF-8 JSON array with
// 2-space indentation. Key order per object is fixed by the struct field
// order of CustomerDocument. A nil collection encodes as an empty array.
func Encode(docs []CustomerDocument) ([]byte, error) {
	if docs == nil {
		docs = make([]CustomerDocument, 0)
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "encode customer documents")
	}
	return data, nil
}

// WriteFile encodes the collection and writes it to path.
func WriteFile(path string, docs []CustomerDocument) error {
	data, err := Encode(docs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}
