// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// Reporter writes analysis results as an XML report document rooted at
// <report>, with an <information> child describing the software and the
// analysis parameters and a <results> child holding one <sum-of-products>
// element per analyzed top event. Minimal cut sets are written in Result
// order, without rounding or re-ordering.
type Reporter struct {
	// Software and Version identify the producer in the report header.
	Software string
	Version  string

	// Now stamps the report; the current wall-clock time when zero.
	Now time.Time
}

type xmlReport struct {
	XMLName     xml.Name       `xml:"report"`
	Information xmlInformation `xml:"information"`
	Results     xmlResults     `xml:"results"`
}

type xmlInformation struct {
	Software xmlSoftware `xml:"software"`
	Time     string      `xml:"time"`
	Method   xmlMethod   `xml:"calculation-methods"`
	Features xmlFeatures `xml:"model-features"`
	Warnings []string    `xml:"warning"`
}

type xmlSoftware struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

type xmlMethod struct {
	Name          string    `xml:"name,attr"`
	Approximation string    `xml:"approximation,attr,omitempty"`
	Limits        xmlLimits `xml:"limits"`
	CalcTime      string    `xml:"calculation-time"`
}

type xmlLimits struct {
	LimitOrder int     `xml:"limit-order"`
	NumSums    int     `xml:"number-of-sums"`
	CutOff     float64 `xml:"cut-off"`
}

type xmlFeatures struct {
	Gates       int `xml:"gates"`
	BasicEvents int `xml:"basic-events"`
	HouseEvents int `xml:"house-events"`
}

type xmlResults struct {
	Sums []xmlSumOfProducts `xml:"sum-of-products"`
}

type xmlSumOfProducts struct {
	Name        string       `xml:"name,attr"`
	BasicEvents int          `xml:"basic-events,attr"`
	Products    int          `xml:"products,attr"`
	Probability string       `xml:"probability,attr,omitempty"`
	Product     []xmlProduct `xml:"product"`
}

type xmlProduct struct {
	Order       int          `xml:"order,attr"`
	Probability string       `xml:"probability,attr,omitempty"`
	Literals    []xmlLiteral
}

type xmlBasicEvent struct {
	Name string `xml:"name,attr"`
}

// xmlLiteral serializes one literal of a product, as <basic-event> or as
// <not><basic-event></not>, so that the literal order of the cut set is
// preserved in the document.
type xmlLiteral struct {
	Name    string
	Negated bool
}

func (l xmlLiteral) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	ev := xmlBasicEvent{Name: l.Name}
	if !l.Negated {
		return e.EncodeElement(ev, xml.StartElement{Name: xml.Name{Local: "basic-event"}})
	}
	not := xml.StartElement{Name: xml.Name{Local: "not"}}
	if err := e.EncodeToken(not); err != nil {
		return err
	}
	if err := e.EncodeElement(ev, xml.StartElement{Name: xml.Name{Local: "basic-event"}}); err != nil {
		return err
	}
	return e.EncodeToken(not.End())
}

// Report writes the XML report of the given results, in argument order, to
// w. All results are expected to come from analyses with the same settings;
// the header reflects the settings of the first one.
func (r Reporter) Report(w io.Writer, results ...*Result) error {
	if len(results) == 0 {
		return validityf("report", "no results to report")
	}
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	set := results[0].Settings
	doc := xmlReport{
		Information: xmlInformation{
			Software: xmlSoftware{Name: r.Software, Version: r.Version},
			Time:     now.Format("2006-01-02 15:04:05"),
			Method: xmlMethod{
				Name:          set.Algorithm,
				Approximation: approxAttr(set),
				Limits: xmlLimits{
					LimitOrder: set.LimitOrder,
					NumSums:    set.NumSums,
					CutOff:     set.CutOff,
				},
			},
		},
	}
	var elapsed time.Duration
	for _, res := range results {
		elapsed += res.Timings.CutSets + res.Timings.Minimization +
			res.Timings.Probability + res.Timings.Importance
		doc.Information.Features.Gates += res.Gates
		doc.Information.Features.BasicEvents += res.BasicEvents
		doc.Information.Features.HouseEvents += res.HouseEvents
		doc.Information.Warnings = append(doc.Information.Warnings, res.Warnings...)
		doc.Results.Sums = append(doc.Results.Sums, sumOfProducts(res))
	}
	doc.Information.Method.CalcTime = fmt.Sprintf("%.5gms", float64(elapsed.Microseconds())/1000)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return &IOError{Op: "report", Err: err}
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return &IOError{Op: "report", Err: err}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return &IOError{Op: "report", Err: err}
	}
	return nil
}

func approxAttr(set Settings) string {
	if !set.Probability || set.Approximation == ApproxNone {
		return ""
	}
	return set.Approximation
}

func sumOfProducts(res *Result) xmlSumOfProducts {
	sum := xmlSumOfProducts{
		Name:        res.Top,
		BasicEvents: res.BasicEvents,
		Products:    len(res.MCS),
	}
	if res.Probability != nil {
		sum.Probability = formatProb(res.Probability.Total)
	}
	for _, c := range res.MCS {
		p := xmlProduct{Order: len(c)}
		if res.Probability != nil {
			p.Probability = formatProb(res.Probability.PerMCS[c.String()])
		}
		for _, l := range c {
			p.Literals = append(p.Literals, xmlLiteral{Name: l.ID, Negated: l.Negated})
		}
		sum.Product = append(sum.Product, p)
	}
	return sum
}

func formatProb(p float64) string {
	return fmt.Sprintf("%.7g", p)
}
