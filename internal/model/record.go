package model

// Record is a single retained inspection row from one worksheet.
// Fields preserves the raw header-to-value mapping; the derived fields
// below are resolved once during ingestion and never mutated afterwards.
type Record struct {
	Sheet  string         // source worksheet name
	Fields map[string]any // header label -> raw cell value

	Date      string // normalized YYYY-MM-DD, "" when unresolvable
	Machine   string
	Inspector string

	TotalParts float64
	HasTotal   bool
	OKParts    float64
	HasOK      bool
	NOKParts   float64

	// ScrapRate is NOK/Total*100 rounded to two decimals.
	// HasScrapRate is false when the total is missing or zero.
	ScrapRate    float64
	HasScrapRate bool

	PartNumbers []string
}

// Dataset is the full extraction result for one workbook.
// The index maps are non-owning views over Records: every indexed
// record is also present in the flat list.
type Dataset struct {
	Records     []*Record
	ByDate      map[string][]*Record
	ByMachine   map[string][]*Record
	ByInspector map[string][]*Record
	ByPart      map[string][]*Record
	SheetNames  []string
}

// NewDataset creates an empty Dataset with initialized indexes.
func NewDataset() *Dataset {
	return &Dataset{
		Records:     []*Record{},
		ByDate:      make(map[string][]*Record),
		ByMachine:   make(map[string][]*Record),
		ByInspector: make(map[string][]*Record),
		ByPart:      make(map[string][]*Record),
	}
}

// Add appends the record to the flat list and files it under every
// index for which a key was resolved. A record lands in at most one
// date/machine/inspector bucket and zero or more part-number buckets.
func (d *Dataset) Add(r *Record) {
	d.Records = append(d.Records, r)

	if r.Date != "" {
		d.ByDate[r.Date] = append(d.ByDate[r.Date], r)
	}
	if r.Machine != "" {
		d.ByMachine[r.Machine] = append(d.ByMachine[r.Machine], r)
	}
	if r.Inspector != "" {
		d.ByInspector[r.Inspector] = append(d.ByInspector[r.Inspector], r)
	}
	for _, pn := range r.PartNumbers {
		d.ByPart[pn] = append(d.ByPart[pn], r)
	}
}
