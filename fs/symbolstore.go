package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/edhgrab"
)

// Ensure SymbolStore implements edhgrab.SymbolStore at compile time.
var _ edhgrab.SymbolStore = (*SymbolStore)(nil)

var setCodeRe = regexp.MustCompile(`^[a-z0-9]{2,8}$`)

// SymbolStore keeps sanitized set symbol SVGs on disk, one file per set
// code. Files are written to a temp name and renamed into place so a
// reader never observes a partial symbol.
type SymbolStore struct {
	dir string
}

// NewSymbolStore creates a SymbolStore rooted at dir.
func NewSymbolStore(dir string) *SymbolStore {
	return &SymbolStore{dir: dir}
}

func (s *SymbolStore) path(code string) string {
	return filepath.Join(s.dir, code+".svg")
}

func (s *SymbolStore) SymbolPath(setCode string) (string, error) {
	code, err := normalizeSetCode(setCode)
	if err != nil {
		return "", err
	}

	p := s.path(code)
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return "", edhgrab.Errorf(edhgrab.ENOTFOUND, "no symbol stored for set %q", setCode)
		}
		return "", err
	}
	return p, nil
}

func (s *SymbolStore) SaveSymbol(setCode string, svg []byte) (string, error) {
	code, err := normalizeSetCode(setCode)
	if err != nil {
		return "", err
	}
	if len(svg) == 0 {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "empty symbol for set %q", setCode)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	final := s.path(code)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, svg, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return final, nil
}

// normalizeSetCode lowercases the code and rejects anything that could
// escape the store directory.
func normalizeSetCode(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !setCodeRe.MatchString(code) {
		return "", edhgrab.Errorf(edhgrab.EINVALID, "invalid set code %q", code)
	}
	return code, nil
}
