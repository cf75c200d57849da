package word

import (
	"archive/zip"
	"os"
)

// The summary document is built from a minimal OOXML package written
// at runtime: the docx library can only edit an existing document, and
// shipping a binary template in the repo is worse than three small XML
// literals.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// The document carries no images or hyperlinks, but the reader still
// insists on the part-level relationship file being present.
const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/><w:sz w:val="40"/></w:rPr><w:t>Scrap Rate Management Summary</w:t></w:r></w:p>
<w:p><w:r><w:t>Generated: {{Date}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Source: {{SourceFile}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Period: {{DateRange}}</w:t></w:r></w:p>
<w:p><w:r><w:t></w:t></w:r></w:p>
<w:p><w:r><w:t>{{Content}}</w:t></w:r></w:p>
<w:sectPr/>
</w:body>
</w:document>`

// writeTemplate writes the placeholder document as a docx package
func writeTemplate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	entries := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			zw.Close()
			return err
		}
	}

	return zw.Close()
}
