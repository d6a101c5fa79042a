package models

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidImport = errors.New("the uploaded file is not a valid finance document")

// ParseDocument parses a stored document leniently. Every collection that is
// absent or not a proper sequence is replaced with an empty one, and full
// parse failure yields a fresh empty document. It never fails: storage
// corruption is absorbed, the worst case is starting over empty.
func ParseDocument(raw []byte) *Document {
	var fields struct {
		Months     json.RawMessage `json:"months"`
		CustomCats json.RawMessage `json:"customCats"`
		CatOrder   json.RawMessage `json:"catOrder"`
		HiddenCats json.RawMessage `json:"hiddenCats"`
	}

	doc := NewDocument()
	if err := json.Unmarshal(raw, &fields); err != nil {
		return doc
	}

	// Unmarshal errors are ignored per field, the empty collection from
	// NewDocument stays in place.
	if fields.Months != nil {
		_ = json.Unmarshal(fields.Months, &doc.Months)
	}
	if fields.CustomCats != nil {
		_ = json.Unmarshal(fields.CustomCats, &doc.CustomCats)
	}
	if fields.CatOrder != nil {
		_ = json.Unmarshal(fields.CatOrder, &doc.CatOrder)
	}
	if fields.HiddenCats != nil {
		_ = json.Unmarshal(fields.HiddenCats, &doc.HiddenCats)
	}

	doc.Repair()
	return doc
}

// NormalizeImport parses an external document and brings it into canonical
// shape. Two shapes are accepted: the current document object and the legacy
// bare array of months. After normalization every entry has an ID and a
// category, so the result can replace the stored document as-is.
//
// The error is only non-nil for unparseable input. In that case the caller
// must keep the previous document, import is all-or-nothing.
func NormalizeImport(raw []byte) (*Document, error) {
	raw = bytes.TrimSpace(raw)

	doc := NewDocument()
	if bytes.HasPrefix(raw, []byte("[")) {
		// Legacy export format: a bare list of months.
		if err := json.Unmarshal(raw, &doc.Months); err != nil {
			return nil, ErrInvalidImport
		}
	} else {
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, ErrInvalidImport
		}
	}

	doc.Repair()

	for _, month := range doc.Months {
		for i := range month.Entries {
			if month.Entries[i].ID == "" {
				month.Entries[i].ID = uuid.NewString()
			}
			if month.Entries[i].Category == "" {
				month.Entries[i].Category = FallbackCategory
			}
		}
	}

	return doc, nil
}
