package codec

import "encoding/json"

// Reseal recomputes the checksum of a hand-edited document.
func Reseal(data []byte) ([]byte, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc.Checksum = checksum(doc.Storage, doc.Capacity, doc.Entries)
	return json.MarshalIndent(doc, "", "  ")
}
