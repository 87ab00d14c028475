// Package wfs encodes OGC WFS 2.0.0 GetFeature requests with a
// Filter Encoding 2.0 spatial predicate.
package wfs

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Namespace URIs bound on the GetFeature root.
const (
	NamespaceWFS = "http://www.opengis.net/wfs/2.0"
	NamespaceFES = "http://www.opengis.net/fes/2.0"
	NamespaceGML = "http://www.opengis.net/gml/3.2"
)

// Version is the WFS protocol version sent with every request.
const Version = "2.0.0"

// Envelope is an axis-aligned rectangle in a named CRS.
type Envelope struct {
	SRSName string
	MinX    float64
	MinY    float64
	MaxX    float64
	MaxY    float64
}

// Ring returns the closed exterior ring of the envelope, counter-clockwise
// from the lower-left corner. The first and last positions are equal.
func (e Envelope) Ring() [][2]float64 {
	return [][2]float64{
		{e.MinX, e.MinY},
		{e.MaxX, e.MinY},
		{e.MaxX, e.MaxY},
		{e.MinX, e.MaxY},
		{e.MinX, e.MinY},
	}
}

// Validate reports whether the envelope describes a non-empty rectangle.
func (e Envelope) Validate() error {
	if e.SRSName == "" {
		return fmt.Errorf("envelope: srs name is required")
	}
	if e.MinX >= e.MaxX || e.MinY >= e.MaxY {
		return fmt.Errorf("envelope: min corner (%v %v) must be below max corner (%v %v)",
			e.MinX, e.MinY, e.MaxX, e.MaxY)
	}
	return nil
}

// GetFeature is the wfs:GetFeature request document.
type GetFeature struct {
	XMLName  xml.Name `xml:"wfs:GetFeature"`
	Service  string   `xml:"service,attr"`
	Version  string   `xml:"version,attr"`
	XmlnsWFS string   `xml:"xmlns:wfs,attr"`
	XmlnsFES string   `xml:"xmlns:fes,attr"`
	XmlnsGML string   `xml:"xmlns:gml,attr"`
	Query    Query    `xml:"wfs:Query"`

	typePrefix string
	typeNS     string
}

// Query selects one feature type and filters it.
type Query struct {
	TypeNames string `xml:"typeNames,attr"`
	Filter    Filter `xml:"fes:Filter"`
}

// Filter wraps the spatial predicate.
type Filter struct {
	Intersects Intersects `xml:"fes:Intersects"`
}

// Intersects selects features whose ValueReference geometry intersects Polygon.
type Intersects struct {
	ValueReference string  `xml:"fes:ValueReference"`
	Polygon        Polygon `xml:"gml:Polygon"`
}

// Polygon is a gml:Polygon with only an exterior ring.
type Polygon struct {
	SRSName  string   `xml:"srsName,attr"`
	Exterior Exterior `xml:"gml:exterior"`
}

// Exterior holds the outer boundary.
type Exterior struct {
	LinearRing LinearRing `xml:"gml:LinearRing"`
}

// LinearRing carries the ring as a whitespace separated coordinate list.
type LinearRing struct {
	PosList string `xml:"gml:posList"`
}

// NewIntersectsQuery builds a GetFeature for typeName (prefix:name) whose
// valueRef geometry intersects env. typeNS is the namespace URI bound to the
// type prefix; it may be empty when the server does not require it.
func NewIntersectsQuery(typeName, typeNS, valueRef string, env Envelope) GetFeature {
	gf := GetFeature{
		Service:  "WFS",
		Version:  Version,
		XmlnsWFS: NamespaceWFS,
		XmlnsFES: NamespaceFES,
		XmlnsGML: NamespaceGML,
		Query: Query{
			TypeNames: typeName,
			Filter: Filter{
				Intersects: Intersects{
					ValueReference: valueRef,
					Polygon: Polygon{
						SRSName: env.SRSName,
						Exterior: Exterior{
							LinearRing: LinearRing{PosList: FormatPosList(env.Ring())},
						},
					},
				},
			},
		},
	}
	if prefix, _, ok := strings.Cut(typeName, ":"); ok && typeNS != "" {
		gf.typePrefix = prefix
		gf.typeNS = typeNS
	}
	return gf
}

// MarshalXML renames the type namespace attribute to xmlns:<prefix>, which
// depends on the feature type and cannot be fixed in a struct tag.
func (gf GetFeature) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type plain GetFeature
	start.Name = xml.Name{Local: "wfs:GetFeature"}
	start.Attr = nil
	if gf.typePrefix != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "xmlns:" + gf.typePrefix},
			Value: gf.typeNS,
		})
	}
	return e.EncodeElement(plain(gf), start)
}

// Marshal renders the request as an indented XML document with declaration.
func (gf GetFeature) Marshal() ([]byte, error) {
	out, err := xml.MarshalIndent(gf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal GetFeature: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// FormatPosList renders positions as "x y x y ...", using the shortest
// decimal form that round-trips each coordinate.
func FormatPosList(positions [][2]float64) string {
	parts := make([]string, 0, len(positions)*2)
	for _, p := range positions {
		parts = append(parts,
			strconv.FormatFloat(p[0], 'f', -1, 64),
			strconv.FormatFloat(p[1], 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
