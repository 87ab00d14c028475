package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"

	logAdapter "github.com/bft-labs/brolfetch/internal/adapters/log"
	"github.com/bft-labs/brolfetch/internal/domain"
	"github.com/bft-labs/brolfetch/internal/ports"
)

// Dispatcher implements ports.RequestDispatcher using net/http.
type Dispatcher struct {
	client ports.HTTPClient
	logger ports.Logger
}

// NewDispatcher creates a dispatcher. A nil client uses http.DefaultClient,
// which has no timeout; a nil logger discards everything.
func NewDispatcher(client ports.HTTPClient, logger ports.Logger) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}
	return &Dispatcher{
		client: client,
		logger: logger,
	}
}

// Dispatch POSTs the descriptor body once and returns the response text
// decoded to UTF-8. The status code does not affect the result.
func (d *Dispatcher) Dispatch(ctx context.Context, rd domain.RequestDescriptor) (domain.Artifact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rd.URL, bytes.NewReader(rd.Body))
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range rd.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	d.logger.Debug("sending request",
		ports.String("url", rd.URL),
		ports.Int("body_bytes", len(rd.Body)))

	resp, err := d.client.Do(req)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("%w: read body: %w", domain.ErrTransport, err)
	}

	contentType := resp.Header.Get("Content-Type")
	text, name, err := decodeText(raw, contentType)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("decode %s body: %w", name, err)
	}

	art := domain.Artifact{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Charset:     name,
		Text:        text,
	}
	if !art.Success() {
		// Saved anyway; the server's exception report is the only signal.
		d.logger.Warn("server returned non-success status",
			ports.Int("status", resp.StatusCode),
			ports.String("url", rd.URL))
	}
	d.logger.Debug("received response",
		ports.Int("status", resp.StatusCode),
		ports.String("charset", name),
		ports.Int("bytes", len(raw)))
	return art, nil
}

// xmlDecl matches the encoding pseudo-attribute of a leading XML declaration.
var xmlDecl = regexp.MustCompile(`^\s*<\?xml[^>]*?\sencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

// decodeText converts raw to UTF-8. The encoding is taken from, in order:
// a BOM or the Content-Type charset, the XML declaration, the whole body
// being valid UTF-8, and finally the sniffed fallback. Invalid UTF-8 under
// a UTF-8 label is replaced with U+FFFD.
func decodeText(raw []byte, contentType string) (string, string, error) {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if !certain {
		if declared, declName := xmlDeclaredEncoding(raw); declared != nil {
			enc, name = declared, declName
		} else if utf8.Valid(raw) {
			return string(raw), "utf-8", nil
		}
	}
	if name == "utf-8" {
		return strings.ToValidUTF8(string(raw), "\uFFFD"), name, nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", name, err
	}
	return string(out), name, nil
}

func xmlDeclaredEncoding(raw []byte) (encoding.Encoding, string) {
	head := raw
	if len(head) > 1024 {
		head = head[:1024]
	}
	m := xmlDecl.FindSubmatch(head)
	if m == nil {
		return nil, ""
	}
	enc, name := charset.Lookup(string(m[1]))
	if enc == nil {
		return nil, ""
	}
	return enc, name
}
