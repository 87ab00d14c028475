package domain

import (
	"fmt"
	"net/http"

	"github.com/bft-labs/brolfetch/internal/wfs"
)

// DefaultEndpoint is the OVAM BROL geoserver WFS endpoint.
const DefaultEndpoint = "https://beheer-risicolocaties.ovam.be/geoserver/BROL/wfs"

// Fixed query parameters. The spatial filter is not configurable.
const (
	FeatureType      = "BROL:risicolocatie"
	FeatureNamespace = "http://BROL"
	GeometryProperty = "geometry"
	SRSLambert72     = "http://www.opengis.net/def/crs/EPSG/0/31370"
	ContentTypeXML   = "text/xml"
)

// QueryArea is the rectangle, in Belgian Lambert 72, whose intersecting
// risk locations are requested.
var QueryArea = wfs.Envelope{
	SRSName: SRSLambert72,
	MinX:    112109.05131306499,
	MinY:    208880.10721898451,
	MaxX:    112303.24273719639,
	MaxY:    209121.10133115202,
}

// RequestDescriptor is the single outbound request. Build it with
// NewRequestDescriptor; callers must not modify it afterwards.
type RequestDescriptor struct {
	URL     string
	Headers http.Header
	Body    []byte
}

// NewRequestDescriptor renders the fixed GetFeature query for endpoint.
func NewRequestDescriptor(endpoint string) (RequestDescriptor, error) {
	if endpoint == "" {
		return RequestDescriptor{}, fmt.Errorf("%w: empty endpoint", ErrInvalidConfig)
	}
	body, err := wfs.NewIntersectsQuery(FeatureType, FeatureNamespace, GeometryProperty, QueryArea).Marshal()
	if err != nil {
		return RequestDescriptor{}, err
	}
	h := make(http.Header)
	h.Set("Content-Type", ContentTypeXML)
	return RequestDescriptor{URL: endpoint, Headers: h, Body: body}, nil
}

// Artifact is the decoded text of one HTTP response. The status code is kept
// for logging; it does not change how the text is handled.
type Artifact struct {
	StatusCode  int
	ContentType string
	Charset     string
	Text        string
}

// Success reports whether the status code is 2xx.
func (a Artifact) Success() bool {
	return a.StatusCode/100 == 2
}
