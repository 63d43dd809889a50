// Package dcat serializes records into the DCAT export document: the
// DataCite 4.3 citation base plus a computed _files field with public file
// access URLs.
package dcat

import (
	"fmt"
	"strconv"

	"github.com/datakeep/communities-service/internal/api/doi"
	"github.com/datakeep/communities-service/internal/api/store/records"
)

type Schema struct {
	siteURL string
}

// NewSchema returns a Schema building download URLs against the given site
// base URL.
func NewSchema(siteURL string) *Schema {
	return &Schema{siteURL: siteURL}
}

// Document is the serialized DCAT export of one record. Files is omitted
// entirely when the record has no exportable file entries.
type Document struct {
	ID string `json:"id"`
	DataCite43
	Files []FileEntry `json:"_files,omitempty"`
}

// FileEntry is the exported view of one stored file. AccessURL is null when
// the record has no DOI.
type FileEntry struct {
	Size        string  `json:"size"`
	AccessURL   *string `json:"access_url"`
	DownloadURL string  `json:"download_url"`
	Key         string  `json:"key"`
}

func (s *Schema) Serialize(record records.Record) (Document, error) {
	files, err := s.getFiles(record)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ID:         record.NodeID,
		DataCite43: newDataCite43(record),
		Files:      files,
	}, nil
}

// getFiles returns nil, meaning no _files field at all, when the record's
// files are disabled or there are no entries.
func (s *Schema) getFiles(record records.Record) ([]FileEntry, error) {
	if !record.FilesEnabled {
		return nil, nil
	}

	var accessURL *string
	if record.DOI != nil {
		url, err := doi.ToURL(*record.DOI)
		if err != nil {
			return nil, fmt.Errorf("error converting DOI of record %s to URL: %w", record.NodeID, err)
		}
		accessURL = &url
	}

	var files []FileEntry
	for _, file := range record.Files {
		files = append(files, FileEntry{
			Size:        strconv.FormatInt(file.Size, 10),
			AccessURL:   accessURL,
			DownloadURL: fmt.Sprintf("%s/records/%s/files/%s", s.siteURL, record.NodeID, file.Key),
			Key:         file.Key,
		})
	}
	return files, nil
}
