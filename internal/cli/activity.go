package cli

import (
	"github.com/rs/zerolog"

	"pagegrip/internal/config"
	"pagegrip/internal/eventbus"
)

// watchEvents logs every domain event published on bus
func watchEvents(bus eventbus.EventBus, logger zerolog.Logger) {
	log := config.ComponentLogger(logger, "events")

	bus.Subscribe(eventbus.EventItemsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemsLoadedEvent); ok {
			log.Debug().Str("source", event.Source).Int("count", event.Count).Msg("items loaded")
		}
	})

	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			sum := event.Summary
			log.Debug().
				Int("page", sum.Page).
				Int("page_size", sum.PageSize).
				Int("shown", sum.Shown).
				Int("total_pages", sum.TotalPages).
				Int("total_items", sum.TotalItems).
				Msg("page changed")
		}
	})

	bus.Subscribe(eventbus.EventFilterChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FilterChangedEvent); ok {
			log.Debug().Str("query", event.Query).Int("matches", event.Matches).Msg("filter changed")
		}
	})

	bus.Subscribe(eventbus.EventSortChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SortChangedEvent); ok {
			log.Debug().Str("from", event.OldMode).Str("to", event.NewMode).Msg("sort changed")
		}
	})

	bus.Subscribe(eventbus.EventNavRejected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.NavigationRejectedEvent); ok {
			log.Debug().Int("requested", event.Requested).Int("total_pages", event.TotalPages).Msg("navigation rejected")
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Error().Err(event.Err).Msg(event.Message)
		}
	})

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Debug().Str("path", event.Path).Int("page_size", event.PageSize).Msg("config loaded")
		}
	})

	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Info().Str("path", event.Path).Msg("config saved")
		}
	})
}
