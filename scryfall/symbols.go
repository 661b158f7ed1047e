package scryfall

import (
	"context"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/fwojciec/edhgrab"
)

// Ensure SymbolService implements edhgrab.SymbolService at compile time.
var _ edhgrab.SymbolService = (*SymbolService)(nil)

// SymbolService resolves set symbols to sanitized local SVG files,
// downloading each symbol at most once per store.
type SymbolService struct {
	client *Client
	store  edhgrab.SymbolStore
	mu     sync.Mutex
}

// NewSymbolService creates a SymbolService backed by the given store.
func NewSymbolService(client *Client, store edhgrab.SymbolStore) *SymbolService {
	return &SymbolService{
		client: client,
		store:  store,
	}
}

// SymbolPath returns the local path of the set symbol, downloading and
// sanitizing it on first use.
func (s *SymbolService) SymbolPath(ctx context.Context, setCode string, symbolURL string) (string, error) {
	if setCode == "" {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "set code required")
	}

	// One download at a time; a batch of cards from the same new set
	// must not race to write the same symbol.
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.store.SymbolPath(setCode)
	if err == nil {
		return path, nil
	}
	if edhgrab.ErrorCode(err) != edhgrab.ENOTFOUND {
		return "", err
	}

	if symbolURL == "" {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "symbol URL required for set %q", setCode)
	}

	raw, err := s.client.fetchRaw(ctx, symbolURL)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if IsNotFound(err) {
			return "", edhgrab.Errorf(edhgrab.ENOTFOUND, "set symbol for %q not found", setCode)
		}
		return "", edhgrab.Errorf(edhgrab.EFETCH, "download set symbol for %q: %v", setCode, err)
	}

	svg, err := SanitizeSVG(raw)
	if err != nil {
		return "", err
	}

	return s.store.SaveSymbol(setCode, svg)
}

// SanitizeSVG validates and cleans an SVG document for local rendering.
// Script and foreignObject elements and inline event handlers are
// removed; the document must carry a viewBox so renderers can scale it.
func SanitizeSVG(raw []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, edhgrab.Errorf(edhgrab.ECONTENT, "invalid SVG: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, edhgrab.Errorf(edhgrab.ECONTENT, "not an SVG document")
	}
	if root.SelectAttr("viewBox") == nil {
		return nil, edhgrab.Errorf(edhgrab.ECONTENT, "SVG missing viewBox")
	}

	scrubElement(root)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.EINTERNAL, "serialize SVG: %v", err)
	}
	return out, nil
}

func scrubElement(el *etree.Element) {
	var handlers []string
	for _, a := range el.Attr {
		if strings.HasPrefix(strings.ToLower(a.Key), "on") {
			handlers = append(handlers, a.Key)
		}
	}
	for _, key := range handlers {
		el.RemoveAttr(key)
	}

	children := el.ChildElements()
	for _, child := range children {
		switch child.Tag {
		case "script", "foreignObject":
			el.RemoveChild(child)
		default:
			scrubElement(child)
		}
	}
}
