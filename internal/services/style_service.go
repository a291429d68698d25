package services

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"kankou/pkg/utils"
)

type StyleServiceInterface interface {
	// Stylesheet returns the CSS to inline into every page, or an error wrapping
	// utils.ErrStyleLoad.
	Stylesheet() (string, error)
}

type StyleService struct {
	css string
	err error
}

// NewStyleService reads the stylesheet once. A missing or unreadable file is kept as an error
// and reported on every page without stopping it.
func NewStyleService(path string, log *zap.Logger) StyleServiceInterface {
	s := &StyleService{}
	b, err := os.ReadFile(path)
	if err != nil {
		s.err = fmt.Errorf("%w: %w", utils.ErrStyleLoad, err)
		log.Warn("stylesheet not loaded", zap.String("path", path), zap.Error(err))
		return s
	}
	s.css = string(b)
	return s
}

func (s *StyleService) Stylesheet() (string, error) {
	return s.css, s.err
}
