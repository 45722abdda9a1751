package menu

import (
	"context"
	"errors"
	"log"
)

// ErrMenuUnavailable is the only error AcquireMenu can return: every real
// strategy failed AND the terminal simulation failed too.
var ErrMenuUnavailable = errors.New("menu unavailable: all acquisition strategies failed")

// Strategy is one independent way of obtaining a menu. A strategy that
// cannot produce a result returns an error; the pipeline logs it and moves
// on — strategy failures are never surfaced to callers.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, req Request) (*Result, error)
}

// Pipeline runs strategies strictly in order and returns the first usable
// result. Strategies run sequentially on purpose: deterministic ordering,
// and at most one browser-automation session at a time.
type Pipeline struct {
	strategies []Strategy
}

func NewPipeline(strategies ...Strategy) *Pipeline {
	return &Pipeline{strategies: strategies}
}

// AcquireMenu degrades rather than errors: with the simulation strategy
// last in the chain, the only failure mode is the generative service itself
// being unavailable.
func (p *Pipeline) AcquireMenu(ctx context.Context, req Request) (*Result, error) {
	for _, strategy := range p.strategies {
		result, err := strategy.Attempt(ctx, req)
		if err != nil {
			log.Printf("MENU_STRATEGY_FAILED strategy=%s restaurant=%q err=%v",
				strategy.Name(), req.Name, err)
			continue
		}

		if !result.Usable() {
			dishes := 0
			if result != nil {
				dishes = len(result.DistinctDishes())
			}
			log.Printf("MENU_STRATEGY_THIN strategy=%s restaurant=%q dishes=%d",
				strategy.Name(), req.Name, dishes)
			continue
		}

		result.Normalize()
		log.Printf("MENU_ACQUIRED strategy=%s restaurant=%q dishes=%d source=%s",
			strategy.Name(), req.Name, len(result.Dishes), result.Source)
		return result, nil
	}

	return nil, ErrMenuUnavailable
}
