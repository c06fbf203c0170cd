package main

import (
	"context"
	"log"
	"time"

	"studiosite/internal/app"
	"studiosite/internal/config"
	"studiosite/internal/events"
	"studiosite/internal/modules/carousel"
	"studiosite/internal/modules/gallery"
	"studiosite/internal/modules/nav"
	"studiosite/internal/pkg/logger"
	"studiosite/internal/surface"
)

// Replays a visitor session against the behavior engine with a log-backed
// UI surface, so the whole wiring can be watched from a terminal.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatal("logger init failed:", err)
	}
	defer func() { _ = zl.Sync() }()

	console := surface.NewConsole(zl)
	engine := app.New(cfg, zl, app.Surfaces{
		Form:     console,
		Carousel: console,
		Gallery:  console,
		Menu:     console,
		Reveal:   console,
	}, app.Content{
		PortfolioItems: []gallery.Item{
			{ID: "wedding-golden-hour", Category: "weddings"},
			{ID: "wedding-first-dance", Category: "weddings"},
			{ID: "portrait-studio-bw", Category: "portraits"},
			{ID: "event-gallery-night", Category: "events"},
			{ID: "portrait-outdoor", Category: "portraits"},
		},
		CarouselItems: categoryCounts{
			"weddings":  7,
			"portraits": 4,
			"events":    2,
		},
		RevealElements: []nav.Element{
			{ID: "hero", Top: 0},
			{ID: "services", Top: 700},
			{ID: "portfolio", Top: 1500},
			{ID: "booking", Top: 2400},
		},
		ViewportWidth: 1280,
	})
	defer engine.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Run(ctx)

	bus := engine.Bus()
	publish := func(topic events.Topic, payload any) {
		bus.Publish(events.Event{Topic: topic, Payload: payload})
		time.Sleep(50 * time.Millisecond)
	}

	zl.Info("replaying visitor session")

	publish(events.TopicScroll, nav.ScrollPayload{Y: 0, ViewportHeight: 900})
	publish(events.TopicMenuToggle, nil)
	publish(events.TopicMenuToggle, nil)

	publish(events.TopicCategoryChange, "weddings")
	publish(events.TopicCarouselHover, carousel.HoverPayload{Entered: true})
	publish(events.TopicCarouselHover, carousel.HoverPayload{Entered: false})

	publish(events.TopicScroll, nav.ScrollPayload{Y: 1200, ViewportHeight: 900})
	publish(events.TopicFilterChange, "portraits")

	// Shrink to a phone, pages rebuild one-wide.
	publish(events.TopicResize, 390)
	time.Sleep(cfg.ResizeDebounce + 50*time.Millisecond)

	// A submit with a past date is rejected on the spot.
	publish(events.TopicFormSubmit, map[string]string{
		"firstName":   "Ava",
		"lastName":    "Stone",
		"email":       "ava@example.com",
		"phone":       "212-555-0123",
		"date":        "2020-01-01",
		"serviceType": "wedding",
	})
	publish(events.TopicFieldEdit, nil)
	time.Sleep(cfg.EditDebounce + 50*time.Millisecond)

	// The corrected submit goes through the simulated send.
	publish(events.TopicFormSubmit, map[string]string{
		"firstName":   "Ava",
		"lastName":    "Stone",
		"email":       "ava@example.com",
		"phone":       "212-555-0123",
		"date":        time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
		"serviceType": "wedding",
		"message":     "Afternoon ceremony, outdoor reception.",
	})
	time.Sleep(cfg.SubmitDelay + cfg.StatusTTL + 200*time.Millisecond)

	zl.Info("session complete")
}

type categoryCounts map[string]int

func (c categoryCounts) ItemCount(categoryID string) int { return c[categoryID] }
