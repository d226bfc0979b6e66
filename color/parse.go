package color

import (
	"container/list"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cache is a bounded, concurrency-safe memo of parse results keyed by the
// source representation. Parsing is cheap but gradients re-parse the same
// handful of specs every frame of an animation, so the cache is worth having;
// it is explicit and injectable so cache sharing across goroutines is a
// visible decision at the call site.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*list.Element
	order *list.List
	cap   int
}

type cacheEntry struct {
	key   string
	value Color
}

// NewCache creates a cache bounded to size entries.
func NewCache(size int) *Cache {
	if size < 1 {
		size = 1
	}
	return &Cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		cap:   size,
	}
}

func (c *Cache) get(key string) (Color, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return Color{}, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(cacheEntry).value, true
}

func (c *Cache) put(key string, value Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.cap {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(cacheEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(cacheEntry{key: key, value: value})
}

// Parser resolves textual color specs, memoizing through an optional cache.
type Parser struct {
	cache *Cache
}

// NewParser builds a parser around cache; a nil cache disables memoization.
func NewParser(cache *Cache) *Parser {
	return &Parser{cache: cache}
}

// Parse resolves spec to a Color. Accepted forms: a named palette entry
// ("red", "dodgerblue"), a hex string ("#f80", "#ff8800"), or an explicit
// triplet ("rgb(255,136,0)"). Unknown forms are a configuration error.
func (p *Parser) Parse(spec string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(spec))
	if p.cache != nil {
		if c, ok := p.cache.get(key); ok {
			return c, nil
		}
	}
	c, err := parse(key)
	if err != nil {
		return Color{}, err
	}
	if p.cache != nil {
		p.cache.put(key, c)
	}
	return c, nil
}

// Parse resolves spec without memoization.
func Parse(spec string) (Color, error) {
	return parse(strings.ToLower(strings.TrimSpace(spec)))
}

func parse(spec string) (Color, error) {
	switch {
	case spec == "":
		return Color{}, fmt.Errorf("color: empty spec")
	case spec[0] == '#':
		return parseHex(spec)
	case strings.HasPrefix(spec, "rgb(") && strings.HasSuffix(spec, ")"):
		return parseTriplet(spec[4 : len(spec)-1])
	default:
		return parseName(spec)
	}
}

func parseHex(spec string) (Color, error) {
	if len(spec) == 4 {
		// #rgb shorthand; colorful only takes the long form.
		spec = fmt.Sprintf("#%c%c%c%c%c%c", spec[1], spec[1], spec[2], spec[2], spec[3], spec[3])
	}
	c, err := colorful.Hex(spec)
	if err != nil {
		return Color{}, fmt.Errorf("color: bad hex %q: %w", spec, err)
	}
	return fromColorful(c), nil
}

func parseTriplet(body string) (Color, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(strings.ReplaceAll(body, " ", ""), "%d,%d,%d", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("color: bad rgb() triplet %q", body)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("color: rgb() component %d out of range", v)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func parseName(name string) (Color, error) {
	tc, ok := tcell.ColorNames[name]
	if !ok {
		return Color{}, fmt.Errorf("color: unknown name %q", name)
	}
	h := tc.Hex()
	if h < 0 {
		return Color{}, fmt.Errorf("color: name %q has no RGB value", name)
	}
	return Color{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h)}, nil
}
