package dcat

import (
	"strconv"

	"github.com/datakeep/communities-service/internal/api/store/records"
)

// DataCite43 is the citation base of the DCAT export, following the DataCite
// Metadata Schema 4.3 field names.
type DataCite43 struct {
	Identifiers     []Identifier `json:"identifiers,omitempty"`
	Creators        []Creator    `json:"creators"`
	Titles          []Title      `json:"titles"`
	Publisher       string       `json:"publisher"`
	PublicationYear string       `json:"publicationYear"`
	Types           ResourceType `json:"types"`
	SchemaVersion   string       `json:"schemaVersion"`
}

type Identifier struct {
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifierType"`
}

type Creator struct {
	Name string `json:"name"`
}

type Title struct {
	Title string `json:"title"`
}

type ResourceType struct {
	ResourceTypeGeneral string `json:"resourceTypeGeneral"`
}

const schemaVersion = "http://datacite.org/schema/kernel-4"

func newDataCite43(record records.Record) DataCite43 {
	base := DataCite43{
		Titles:          []Title{{Title: record.Title}},
		Publisher:       record.Publisher,
		PublicationYear: strconv.Itoa(record.PublicationYear),
		Types:           ResourceType{ResourceTypeGeneral: "Dataset"},
		SchemaVersion:   schemaVersion,
	}
	for _, creator := range record.Creators {
		base.Creators = append(base.Creators, Creator{Name: creator})
	}
	if record.DOI != nil {
		base.Identifiers = append(base.Identifiers, Identifier{
			Identifier:     *record.DOI,
			IdentifierType: "DOI",
		})
	}
	return base
}
