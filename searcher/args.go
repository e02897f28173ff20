package searcher

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"mytikas/experiments/metrics"
	"mytikas/meta"
)

// descriptor is a parsed strategy descriptor such as "minimax,max_depth=3":
// the strategy name followed by key=value parameters.
type descriptor struct {
	raw    string
	name   string
	params map[string]string
}

func parseDescriptor(raw string) (*descriptor, error) {
	parts := strings.Split(raw, ",")
	d := &descriptor{raw: raw, name: parts[0], params: make(map[string]string)}
	if d.name == "" {
		return nil, d.fail("missing strategy name")
	}
	for _, part := range parts[1:] {
		key, val, _ := strings.Cut(part, "=")
		if key == "" {
			return nil, d.fail("empty parameter name")
		}
		if _, dup := d.params[key]; dup {
			return nil, d.fail(fmt.Sprintf("duplicate parameter %q", key))
		}
		d.params[key] = val
	}
	return d, nil
}

func (d *descriptor) fail(reason string) error {
	return &SearchError{Descriptor: d.raw, Reason: reason}
}

// positive consumes an optional positive integer parameter.
func (d *descriptor) positive(key string, def int) (int, error) {
	val, ok := d.params[key]
	if !ok {
		return def, nil
	}
	delete(d.params, key)
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, d.fail(fmt.Sprintf("%s must be a positive integer, got %q", key, val))
	}
	return n, nil
}

// seed consumes the optional seed parameter, defaulting to the clock.
func (d *descriptor) seed() (uint64, error) {
	val, ok := d.params["seed"]
	if !ok {
		return uint64(time.Now().UnixNano()), nil
	}
	delete(d.params, "seed")
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, d.fail(fmt.Sprintf("seed must be an unsigned integer, got %q", val))
	}
	return n, nil
}

// done fails if parameters were left unconsumed.
func (d *descriptor) done() error {
	if len(d.params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(d.params))
	for key := range d.params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return d.fail(fmt.Sprintf("unknown parameter %q", keys[0]))
}

// New builds the strategy named by descriptor:
//
//	random[,seed=N]
//	minimax,max_depth=N
//	mcts[,playouts=N][,cutoff=N][,goroutines=N][,seed=N]
//
// A nil collector disables search metrics.
func New(raw string, collector metrics.Collector) (Strategy, error) {
	d, err := parseDescriptor(raw)
	if err != nil {
		return nil, err
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}

	var s Strategy
	switch d.name {
	case "random":
		seed, err := d.seed()
		if err != nil {
			return nil, err
		}
		s = NewRandom(seed)
	case "minimax":
		if _, ok := d.params["max_depth"]; !ok {
			return nil, d.fail("missing max_depth")
		}
		depth, err := d.positive("max_depth", 0)
		if err != nil {
			return nil, err
		}
		s = NewMinimax(depth, collector)
	case "mcts":
		playouts, err := d.positive("playouts", meta.PLAYOUTS)
		if err != nil {
			return nil, err
		}
		cutoff, err := d.positive("cutoff", meta.WITH_CUTOFF)
		if err != nil {
			return nil, err
		}
		goroutines, err := d.positive("goroutines", meta.GO_ROUTINES)
		if err != nil {
			return nil, err
		}
		seed, err := d.seed()
		if err != nil {
			return nil, err
		}
		s = NewMCTS(goroutines,
			WithPlayouts(playouts),
			WithCutoff(cutoff),
			WithSeed(seed),
			WithCollector(collector),
		)
	default:
		return nil, &SearchError{Descriptor: raw, Reason: fmt.Sprintf("unknown strategy %q", d.name), Err: ErrUnknownStrategy}
	}
	if err := d.done(); err != nil {
		return nil, err
	}
	return s, nil
}
