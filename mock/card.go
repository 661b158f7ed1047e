package mock

import (
	"context"

	"github.com/fwojciec/edhgrab"
)

// Compile-time interface verification.
var (
	_ edhgrab.CardService   = (*CardService)(nil)
	_ edhgrab.SymbolService = (*SymbolService)(nil)
	_ edhgrab.SymbolStore   = (*SymbolStore)(nil)
)

// CardService is a mock implementation of edhgrab.CardService.
type CardService struct {
	FindCardByNameFn func(ctx context.Context, name string) (*edhgrab.CardDetails, error)
}

func (s *CardService) FindCardByName(ctx context.Context, name string) (*edhgrab.CardDetails, error) {
	return s.FindCardByNameFn(ctx, name)
}

// SymbolService is a mock implementation of edhgrab.SymbolService.
type SymbolService struct {
	SymbolPathFn func(ctx context.Context, setCode string, symbolURL string) (string, error)
}

func (s *SymbolService) SymbolPath(ctx context.Context, setCode string, symbolURL string) (string, error) {
	return s.SymbolPathFn(ctx, setCode, symbolURL)
}

// SymbolStore is a mock implementation of edhgrab.SymbolStore.
type SymbolStore struct {
	SymbolPathFn func(setCode string) (string, error)
	SaveSymbolFn func(setCode string, svg []byte) (string, error)
}

func (s *SymbolStore) SymbolPath(setCode string) (string, error) {
	return s.SymbolPathFn(setCode)
}

func (s *SymbolStore) SaveSymbol(setCode string, svg []byte) (string, error) {
	return s.SaveSymbolFn(setCode, svg)
}
