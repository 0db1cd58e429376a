package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"thde.io/porter"
)

type passView struct {
	ID            string      `json:"id"`
	ClassID       string      `json:"classId"`
	Type          string      `json:"type"`
	State         string      `json:"state"`
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle,omitempty"`
	Barcode       string      `json:"barcode,omitempty"`
	Fields        []fieldView `json:"fields,omitempty"`
	LinkedObjects []string    `json:"linkedObjects,omitempty"`
	ValidFrom     *time.Time  `json:"validFrom,omitempty"`
	ValidUntil    *time.Time  `json:"validUntil,omitempty"`
}

type fieldView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type classView struct {
	ID           string `json:"id"`
	IssuerName   string `json:"issuerName,omitempty"`
	ReviewStatus string `json:"reviewStatus"`
}

func newPassView(p porter.Pass) passView {
	v := passView{
		ID:            p.ID,
		ClassID:       p.ClassID,
		Type:          p.Type.String(),
		State:         p.State.String(),
		Title:         p.Header.Title,
		LinkedObjects: p.LinkedObjects,
	}

	if p.Header.Subtitle != nil {
		v.Subtitle = *p.Header.Subtitle
	}
	if p.Barcode != nil {
		v.Barcode = p.Barcode.Format.String() + ":" + p.Barcode.Value
	}
	for _, f := range p.Fields {
		v.Fields = append(v.Fields, fieldView{Key: f.Key, Label: f.Label, Value: f.Value})
	}
	if p.ValidTimeInterval != nil {
		from := p.ValidTimeInterval.Start
		v.ValidFrom = &from
		v.ValidUntil = p.ValidTimeInterval.End
	}

	return v
}

func newClassView(c porter.PassClass) classView {
	return classView{
		ID:           c.ID,
		IssuerName:   c.IssuerName,
		ReviewStatus: c.ReviewStatus.String(),
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// passTable writes one line per pass.
type passTable struct {
	tw *tabwriter.Writer
}

func newPassTable(w io.Writer) *passTable {
	t := &passTable{tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
	fmt.Fprintln(t.tw, "ID\tSTATE\tTITLE")
	return t
}

func (t *passTable) add(p porter.Pass) {
	fmt.Fprintf(t.tw, "%s\t%s\t%s\n", p.ID, strings.ToUpper(p.State.String()), p.Header.Title)
}

func (t *passTable) flush() error {
	return t.tw.Flush()
}
