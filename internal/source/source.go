package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"pagegrip/internal/domain"
	"pagegrip/internal/eventbus"
)

// DemoSource is the source name reported for generated items
const DemoSource = "demo"

// StdinPath selects standard input as the items file
const StdinPath = "-"

// maxLineSize bounds a single item line
const maxLineSize = 1024 * 1024

// Loader produces the item collection browsed by the paginator
type Loader interface {
	Load(ctx context.Context) ([]domain.Item, error)
}

// loader is the concrete implementation
type loader struct {
	bus       eventbus.EventBus
	logger    zerolog.Logger
	path      string
	demoItems int
}

// NewLoader creates a loader reading path, or generating demoItems items when
// path is empty
func NewLoader(bus eventbus.EventBus, logger zerolog.Logger, path string, demoItems int) Loader {
	return &loader{
		bus:       bus,
		logger:    logger.With().Str("component", "source").Logger(),
		path:      path,
		demoItems: demoItems,
	}
}

// Load reads the items and publishes ItemsLoadedEvent
func (l *loader) Load(ctx context.Context) ([]domain.Item, error) {
	name := l.path
	var items []domain.Item
	if l.path == "" {
		name = DemoSource
		items = Demo(l.demoItems)
	} else {
		loaded, err := LoadFile(ctx, l.path)
		if err != nil {
			if l.bus != nil {
				l.bus.Publish(eventbus.ErrorEvent{Message: "failed to load items", Err: err})
			}
			return nil, err
		}
		items = loaded
	}

	l.logger.Debug().Str("source", name).Int("count", len(items)).Msg("items loaded")
	if l.bus != nil {
		l.bus.Publish(eventbus.ItemsLoadedEvent{Source: name, Count: len(items)})
	}
	return items, nil
}

// Demo generates "Item 1" through "Item n"
func Demo(n int) []domain.Item {
	items := make([]domain.Item, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		items = append(items, domain.NewItem(i, fmt.Sprintf("Item %d", i)))
	}
	return items
}

// LoadFile reads one item per line from path. StdinPath reads standard input.
func LoadFile(ctx context.Context, path string) ([]domain.Item, error) {
	if path == StdinPath {
		return Read(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer f.Close()

	items, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return items, nil
}

// Read reads one item per non-blank line. Positions count kept items only.
func Read(ctx context.Context, r io.Reader) ([]domain.Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []domain.Item
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, domain.NewItem(len(items)+1, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
