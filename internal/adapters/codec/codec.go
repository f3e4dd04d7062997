// Package codec converts a history store to and from its persisted form.
//
// The persisted form is an indented JSON document:
//
//	{
//	  "version": 1,
//	  "compat": 1,
//	  "storage": "files",
//	  "capacity": 100,
//	  "checksum": "9f2c4e0d7a1b3c55",
//	  "entries": [
//	    {"identity": "/home/me/notes.md", "last_used_at": "2026-03-01T12:00:00Z", "use_count": 3}
//	  ]
//	}
//
// Entries are ordered most recent first. A reader accepts any document whose
// compat value does not exceed Version, so newer writers can add fields that
// older readers skip.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/engine/history"
	"go.trai.ch/zerr"
)

// Version is the format version written by Encode.
const Version = 1

type document struct {
	Version  int      `json:"version"`
	Compat   int      `json:"compat,omitempty"`
	Storage  string   `json:"storage"`
	Capacity int      `json:"capacity"`
	Checksum string   `json:"checksum"`
	Entries  []record `json:"entries"`
}

type record struct {
	Identity   string    `json:"identity"`
	LastUsedAt time.Time `json:"last_used_at"`
	UseCount   uint64    `json:"use_count"`
}

// Encode serializes the store. Equal stores always encode to equal bytes.
func Encode(st domain.StorageType, s *history.Store[domain.Identity]) ([]byte, error) {
	doc := document{
		Version:  Version,
		Compat:   Version,
		Storage:  st.String(),
		Capacity: s.Capacity(),
		Entries:  make([]record, 0, s.Len()),
	}
	for e := range s.All() {
		doc.Entries = append(doc.Entries, record{
			Identity:   e.Identity.String(),
			LastUsedAt: e.LastUsedAt.UTC(),
			UseCount:   e.UseCount,
		})
	}
	doc.Checksum = checksum(doc.Storage, doc.Capacity, doc.Entries)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	return append(data, '\n'), nil
}

// Decode parses data written by Encode for storage type st. Every failure is
// classified as domain.ErrCorruptHistory; a document that needs a newer reader
// additionally matches domain.ErrUnsupportedVersion.
func Decode(st domain.StorageType, data []byte, opts ...history.Option) (*history.Store[domain.Identity], error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, corrupt(zerr.New("history file is empty"))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corrupt(zerr.Wrap(err, "malformed history document"))
	}

	if doc.Version < 1 {
		return nil, corrupt(zerr.With(zerr.New("missing or invalid version"), "version", doc.Version))
	}
	compat := doc.Compat
	if compat == 0 {
		compat = doc.Version
	}
	if compat > Version {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "history was written by a newer release"), "version", doc.Version)
		return nil, corrupt(zerr.With(err, "compat", compat))
	}

	if doc.Storage != st.String() {
		err := zerr.With(zerr.New("history belongs to another storage type"), "want", st.String())
		return nil, corrupt(zerr.With(err, "got", doc.Storage))
	}
	if doc.Capacity < 1 {
		return nil, corrupt(zerr.With(zerr.New("invalid capacity"), "capacity", doc.Capacity))
	}

	for i, r := range doc.Entries {
		if r.Identity == "" {
			return nil, corrupt(zerr.With(zerr.Wrap(domain.ErrInvalidIdentity, "entry has an empty identity"), "index", i))
		}
	}

	if sum := checksum(doc.Storage, doc.Capacity, doc.Entries); sum != doc.Checksum {
		err := zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "entries do not match the stored checksum"), "want", doc.Checksum)
		return nil, corrupt(zerr.With(err, "got", sum))
	}

	entries := make([]history.Entry[domain.Identity], len(doc.Entries))
	for i, r := range doc.Entries {
		entries[i] = history.Entry[domain.Identity]{
			Identity:   domain.Identity(r.Identity),
			LastUsedAt: r.LastUsedAt.UTC(),
			UseCount:   r.UseCount,
		}
	}

	s, err := history.Restore(doc.Capacity, entries, opts...)
	if err != nil {
		return nil, corrupt(err)
	}

	return s, nil
}

func corrupt(err error) error {
	return errors.Join(domain.ErrCorruptHistory, err)
}

// checksum digests the fields defined by format version 1.
func checksum(storage string, capacity int, entries []record) string {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = append(buf, storage...)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, int64(capacity), 10)
	buf = append(buf, '\n')
	_, _ = d.Write(buf)

	for _, r := range entries {
		buf = buf[:0]
		buf = append(buf, r.Identity...)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, r.LastUsedAt.UnixNano(), 10)
		buf = append(buf, 0)
		buf = strconv.AppendUint(buf, r.UseCount, 10)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}

	return fmt.Sprintf("%016x", d.Sum64())
}
