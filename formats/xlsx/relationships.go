package xlsx

import (
	"encoding/xml"
	"path"
)

// relationships is a _rels/*.rels part decoded via encoding/xml, the
// same struct-tag decoding style pom.Project uses for Maven POMs: the
// relationship id/target pairs are looked up by id, never walked in
// document order, so a plain struct decode (rather than the
// sax/ctxstack machinery the content parts use) is the natural fit.
type relationshipsXML struct {
	XMLName       xml.Name           `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// relationshipTable resolves an r:id (as it appears on <sheet r:id="...">)
// to the zip-absolute part path it targets.
type relationshipTable map[string]string

// parseRelationships decodes a _rels/*.rels part. base is the
// directory the referencing part lives in (e.g. "xl" for
// "xl/_rels/workbook.xml.rels"), since Target is recorded relative to
// it.
func parseRelationships(data []byte, base string) (relationshipTable, error) {
	var doc relationshipsXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	table := make(relationshipTable, len(doc.Relationships))
	for _, r := range doc.Relationships {
		table[r.ID] = path.Join(base, r.Target)
	}
	return table, nil
}

func relsPathFor(partPath string) string {
	dir, file := path.Split(partPath)
	return path.Join(dir, "_rels", file+".rels")
}
