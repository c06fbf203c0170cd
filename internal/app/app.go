package app

import (
	"context"

	"go.uber.org/zap"

	"studiosite/internal/config"
	"studiosite/internal/events"
	"studiosite/internal/modules/booking"
	"studiosite/internal/modules/carousel"
	"studiosite/internal/modules/gallery"
	"studiosite/internal/modules/nav"
)

// Surfaces collects the UI implementations the engine writes to. One
// concrete type may back several of them (the demo's console surface backs
// all).
type Surfaces struct {
	Form     booking.FormSurface
	Carousel carousel.Surface
	Gallery  gallery.Surface
	Menu     nav.MenuSurface
	Reveal   nav.RevealSurface
}

// Content is the page content the engine operates on.
type Content struct {
	PortfolioItems []gallery.Item
	CarouselItems  carousel.ItemSource
	RevealElements []nav.Element
	ViewportWidth  int
}

// App wires every feature to the event router. Each feature initializes
// independently: a panic during one feature's setup is logged and the rest
// of the page keeps working, since the features share no invariant.
type App struct {
	cfg *config.Config
	log *zap.Logger
	bus *events.Bus

	sequencer *booking.Sequencer
	carousel  *carousel.Controller
	gallery   *gallery.Filter
	menu      *nav.Menu
	reveal    *nav.Reveal
}

func New(cfg *config.Config, log *zap.Logger, surfaces Surfaces, content Content) *App {
	a := &App{
		cfg: cfg,
		log: log,
		bus: events.NewBus(log, cfg.BusBuffer),
	}

	a.initFeature("booking", func() {
		a.sequencer = booking.NewSequencer(
			booking.NewValidator(cfg.StrictPhone),
			booking.NewLogDispatcher(log),
			surfaces.Form,
			log,
			booking.SequencerConfig{
				SubmitDelay:  cfg.SubmitDelay,
				StatusTTL:    cfg.StatusTTL,
				EditDebounce: cfg.EditDebounce,
				PhoneRegion:  cfg.PhoneRegion,
			},
		)
		booking.NewHandler(a.sequencer, cfg.HoneypotField, log).Register(a.bus)
	})

	a.initFeature("carousel", func() {
		a.carousel = carousel.NewController(
			carousel.Config{
				Breakpoint:  cfg.Breakpoint,
				ItemsWide:   cfg.ItemsWide,
				ItemsNarrow: cfg.ItemsNarrow,
				AutoAdvance: cfg.AutoAdvance,
			},
			surfaces.Carousel,
			content.CarouselItems,
			log,
			content.ViewportWidth,
		)
		carousel.NewHandler(a.carousel, cfg.ResizeDebounce, log).Register(a.bus)
	})

	a.initFeature("gallery", func() {
		a.gallery = gallery.NewFilter(content.PortfolioItems, surfaces.Gallery, log)
		gallery.NewHandler(a.gallery, log).Register(a.bus)
	})

	a.initFeature("nav", func() {
		a.menu = nav.NewMenu(surfaces.Menu)
		a.reveal = nav.NewReveal(content.RevealElements, cfg.RevealThreshold, surfaces.Reveal)
		nav.NewHandler(a.menu, a.reveal, cfg.ScrollThrottle, log).Register(a.bus)
	})

	return a
}

func (a *App) initFeature(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("feature failed to initialize, page continues without it",
				zap.String("feature", name),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}

// Bus exposes the router so the page glue can publish interaction events.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// CarouselPageCount reports the active category's page count, or 0 when the
// carousel feature is not up.
func (a *App) CarouselPageCount() int {
	if a.carousel == nil {
		return 0
	}
	return a.carousel.PageCount()
}

// Run starts event dispatch.
func (a *App) Run(ctx context.Context) {
	a.bus.Run(ctx)
}

// Close stops timers and the router.
func (a *App) Close() {
	if a.sequencer != nil {
		a.sequencer.Close()
	}
	if a.carousel != nil {
		a.carousel.Close()
	}
	a.bus.Close()
}
