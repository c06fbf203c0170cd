// Package surface provides a log-backed implementation of every module
// surface. The demo binary uses it in place of a real UI layer; tests use
// their own fakes.
package surface

import (
	"go.uber.org/zap"
)

// Console renders UI updates as structured log lines.
type Console struct {
	log *zap.Logger
}

func NewConsole(log *zap.Logger) *Console {
	return &Console{log: log}
}

// booking.FormSurface

func (c *Console) ShowStatus(text string, ok bool) {
	c.log.Info("form status", zap.String("text", text), zap.Bool("ok", ok))
}

func (c *Console) ClearStatus() {
	c.log.Info("form status cleared")
}

func (c *Console) ResetFields() {
	c.log.Info("form fields reset")
}

// carousel.Surface

func (c *Console) SetTrackOffset(categoryID string, percent float64) {
	c.log.Info("carousel track moved",
		zap.String("category", categoryID),
		zap.Float64("offset_percent", percent),
	)
}

func (c *Console) SetActivePage(categoryID string, index int) {
	c.log.Info("carousel page active",
		zap.String("category", categoryID),
		zap.Int("page", index),
	)
}

func (c *Console) RebuildIndicators(categoryID string, pageCount int) {
	c.log.Info("carousel indicators rebuilt",
		zap.String("category", categoryID),
		zap.Int("pages", pageCount),
	)
}

// gallery.Surface

func (c *Console) SetVisibleItems(ids []string) {
	c.log.Info("portfolio items visible", zap.Strings("items", ids))
}

func (c *Console) SetActiveFilter(category string) {
	c.log.Info("portfolio filter active", zap.String("category", category))
}

// nav.MenuSurface

func (c *Console) SetMenuOpen(open bool) {
	c.log.Info("menu state", zap.Bool("open", open))
}

func (c *Console) FocusFirstLink() {
	c.log.Debug("focus moved to first nav link")
}

func (c *Console) FocusToggle() {
	c.log.Debug("focus moved to menu toggle")
}

// nav.RevealSurface

func (c *Console) Reveal(ids []string) {
	c.log.Info("elements revealed", zap.Strings("elements", ids))
}
