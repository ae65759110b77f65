package tree

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-tree/engine/component"
	"github.com/Carmen-Shannon/oxy-tree/engine/config"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

type tree struct {
	cfg   *config.Config
	state morph.SceneState

	foliage      component.Foliage
	ornaments    component.Instanced
	gifts        component.Instanced
	star         component.Star
	ribbon       component.Ribbon
	sparkles     component.Sparkles
	starSparkles component.Sparkles

	components []component.Component

	// construction settings
	workers      int
	cpuPositions bool
}

// Tree composes every part of the scene and drives them from one shared scatter toggle.
// It owns no GPU resources; renderers read the components' buffers after Tick.
type Tree interface {
	// State returns the shared scatter toggle.
	//
	// Returns:
	//   - morph.SceneState: the toggle
	State() morph.SceneState

	// ToggleScatter flips the shared toggle.
	//
	// Returns:
	//   - bool: true if the scene is now scattering
	ToggleScatter() bool

	// Tick advances every component in composition order.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	//   - deltaTime: seconds since the previous tick
	Tick(elapsed, deltaTime float32)

	// Morph returns the foliage's morph factor, the scene's representative progress.
	//
	// Returns:
	//   - float32: the factor in [0, 1]
	Morph() float32

	// Offset returns the translation applied to the whole tree group.
	//
	// Returns:
	//   - [3]float32: the group offset
	Offset() [3]float32

	// Config returns the configuration the tree was built from.
	//
	// Returns:
	//   - *config.Config: the configuration
	Config() *config.Config

	Foliage() component.Foliage
	Ornaments() component.Instanced
	Gifts() component.Instanced
	Star() component.Star
	Ribbon() component.Ribbon
	Sparkles() component.Sparkles
	StarSparkles() component.Sparkles

	// Components returns every component in tick order.
	//
	// Returns:
	//   - []component.Component: the components
	Components() []component.Component
}

var _ Tree = &tree{}

// NewTree generates every element set described by cfg. Sets are generated concurrently on a worker
// pool since generation is the only allocation-heavy step; nothing is generated after this returns.
//
// Parameters:
//   - cfg: the scene configuration, already validated
//   - options: functional options to configure the tree
//
// Returns:
//   - Tree: the composed scene
//   - error: if any set fails to generate
func NewTree(cfg *config.Config, options ...TreeBuilderOption) (Tree, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	t := &tree{
		cfg:     cfg,
		workers: min(runtime.NumCPU(), 4),
	}
	for _, opt := range options {
		opt(t)
	}
	if t.state == nil {
		t.state = morph.NewSceneState()
	}

	started := time.Now()
	if err := t.build(); err != nil {
		return nil, err
	}

	// the star's glitter follows the star
	t.sparkles = component.NewSparkles("sparkles", component.AmbientSparkles(cfg.Counts.Sparkles), nil, t.sparkleSeed(0)...)
	t.starSparkles = component.NewSparkles("star sparkles", component.StarSparkles(cfg.Counts.StarSparkles), t.star.Position, t.sparkleSeed(1)...)

	t.components = []component.Component{
		t.foliage, t.ornaments, t.ribbon, t.star, t.gifts, t.sparkles, t.starSparkles,
	}

	log.Printf("[Tree] generated %d foliage, %d ornaments, %d gifts in %s",
		cfg.Counts.Foliage, cfg.Counts.Ornaments, cfg.Counts.Gifts, time.Since(started).Round(time.Millisecond))
	return t, nil
}

// build generates the morphing sets in parallel. Each task owns its own pose generator.
func (t *tree) build() error {
	shared := []component.ComponentBuilderOption{
		component.WithSchedulerOptions(morph.WithRate(t.cfg.Morph.Rate)),
	}

	tasks := []struct {
		name string
		run  func(opts []component.ComponentBuilderOption) error
	}{
		{"foliage", func(opts []component.ComponentBuilderOption) (err error) {
			if t.cpuPositions {
				opts = append(opts, component.WithCPUPositions(true))
			}
			t.foliage, err = component.NewFoliage(t.cfg.Counts.Foliage, t.state, opts...)
			return err
		}},
		{"ornaments", func(opts []component.ComponentBuilderOption) (err error) {
			t.ornaments, err = component.NewOrnaments(t.cfg.Counts.Ornaments, t.state, opts...)
			return err
		}},
		{"gifts", func(opts []component.ComponentBuilderOption) (err error) {
			t.gifts, err = component.NewGifts(t.cfg.Counts.Gifts, t.state, opts...)
			return err
		}},
		{"star", func(opts []component.ComponentBuilderOption) (err error) {
			t.star, err = component.NewStar(t.state, opts...)
			return err
		}},
		{"ribbon", func(opts []component.ComponentBuilderOption) error {
			t.ribbon = component.NewRibbonWithShape(ribbonShape(t.cfg), t.state, opts...)
			return nil
		}},
	}

	gens := make([]pose.Generator, len(tasks))
	for i := range tasks {
		gen, err := t.generator(uint64(i))
		if err != nil {
			return err
		}
		gens[i] = gen
	}

	pool := worker.NewDynamicWorkerPool(max(t.workers, 1), len(tasks), time.Second)
	defer pool.Stop()
	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		opts := append([]component.ComponentBuilderOption{component.WithGenerator(gens[i])}, shared...)

		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if err := task.run(opts); err != nil {
					errs[i] = fmt.Errorf("failed to build %s: %w", task.name, err)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

// ribbonShape winds the garland from the configured tree's base to its apex. The base radius
// keeps the default clearance over the foliage cone.
func ribbonShape(c *config.Config) component.RibbonShape {
	shape := component.DefaultRibbonShape()
	def := config.Default().Tree
	shape.Height = c.Tree.Height
	shape.BaseRadius *= c.Tree.FoliageRadius / def.FoliageRadius
	return shape
}

// generator builds an independent pose generator for task i. A zero seed leaves it entropy-seeded.
func (t *tree) generator(i uint64) (pose.Generator, error) {
	c := t.cfg
	ornaments, err := c.OrnamentPalette()
	if err != nil {
		return nil, err
	}
	gifts, err := c.GiftPalette()
	if err != nil {
		return nil, err
	}
	deep, teal, accent, err := c.FoliageColors()
	if err != nil {
		return nil, err
	}

	opts := []pose.GeneratorBuilderOption{
		pose.WithTreeHeight(c.Tree.Height),
		pose.WithOrnamentRadius(c.Tree.OrnamentRadius),
		pose.WithFoliageRadius(c.Tree.FoliageRadius),
		pose.WithScatterShell(c.Tree.ScatterMin, c.Tree.ScatterSpan),
		pose.WithApex(0, c.Tree.Height/2+0.2, 0),
		pose.WithOrnamentPalette(ornaments),
		pose.WithGiftPalette(gifts),
		pose.WithFoliageColors(deep, teal, accent),
	}
	if c.Tree.Seed != 0 {
		opts = append(opts, pose.WithSeed(c.Tree.Seed+i))
	}
	return pose.NewGenerator(opts...), nil
}

func (t *tree) sparkleSeed(i uint64) []component.ComponentBuilderOption {
	if t.cfg.Tree.Seed == 0 {
		return nil
	}
	return []component.ComponentBuilderOption{component.WithSeed(t.cfg.Tree.Seed + 100 + i)}
}

func (t *tree) State() morph.SceneState {
	return t.state
}

func (t *tree) ToggleScatter() bool {
	return t.state.ToggleScatter()
}

func (t *tree) Tick(elapsed, deltaTime float32) {
	for _, c := range t.components {
		c.Tick(elapsed, deltaTime)
	}
}

func (t *tree) Morph() float32 {
	return t.foliage.Set().Morph()
}

func (t *tree) Offset() [3]float32 {
	return [3]float32{0, t.cfg.Tree.OffsetY, 0}
}

func (t *tree) Config() *config.Config {
	return t.cfg
}

func (t *tree) Foliage() component.Foliage {
	return t.foliage
}

func (t *tree) Ornaments() component.Instanced {
	return t.ornaments
}

func (t *tree) Gifts() component.Instanced {
	return t.gifts
}

func (t *tree) Star() component.Star {
	return t.star
}

func (t *tree) Ribbon() component.Ribbon {
	return t.ribbon
}

func (t *tree) Sparkles() component.Sparkles {
	return t.sparkles
}

func (t *tree) StarSparkles() component.Sparkles {
	return t.starSparkles
}

func (t *tree) Components() []component.Component {
	return t.components
}
