// Package sim integrates particle scenarios with the vec2d vector type.
// It is deliberately allocation-shy: all per-step arithmetic runs through
// the Local mutator family and scratch vectors come from a pool.
package sim

import (
	"math/rand"

	"github.com/umpc/go-sortedmap"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/vec2d/pool"
	"github.com/pdok/vec2d/scenario"
	"github.com/pdok/vec2d/vec2d"
)

const scratchPoolSize = 64

// Particle is a point mass. Pos and Vel are owned by the particle and
// mutated in place on every step.
type Particle struct {
	Pos *vec2d.Vector2D
	Vel *vec2d.Vector2D
}

// Observer is called after every step with the current particle state.
// The particles must not be retained across calls; copy what you need.
type Observer func(step int, particles []Particle)

// Engine runs one scenario.
type Engine struct {
	scenario  scenario.Scenario
	rng       *rand.Rand
	particles []Particle
	scratch   *pool.Pool[*vec2d.Vector2D]
	step      int
}

// NewEngine spawns the particles of all emitters and returns an engine ready
// to run. Emitters are processed in scenario order so a seed always yields
// the same spawn state.
func NewEngine(s scenario.Scenario) *Engine {
	e := &Engine{
		scenario:  s,
		rng:       rand.New(rand.NewSource(s.Seed)),
		particles: make([]Particle, 0, s.ParticleCount()),
		scratch:   pool.New(func() *vec2d.Vector2D { return vec2d.NewZero() }, scratchPoolSize),
	}
	for i := range s.Emitters {
		e.spawn(s.Emitters[i])
	}
	return e
}

func (e *Engine) spawn(em scenario.Emitter) {
	for i := 0; i < em.Count; i++ {
		degrees := em.AngleDeg + (e.rng.Float64()-0.5)*em.SpreadDeg
		e.particles = append(e.particles, Particle{
			Pos: vec2d.New(em.Origin[0], em.Origin[1]),
			Vel: vec2d.FromAngle(degrees).MulLocal(em.Speed),
		})
	}
}

// Particles exposes the live particle state, e.g. for checkpointing.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Step advances the simulation by one time step using semi-implicit Euler.
func (e *Engine) Step() {
	s := &e.scenario
	for i := range e.particles {
		p := &e.particles[i]

		acc := e.scratch.Obtain()
		acc.Set(s.Gravity[0], s.Gravity[1])
		if s.Attract > 0 {
			// pull toward the origin, scaled by the attractor strength
			pull := e.scratch.Obtain()
			pull.SetVector(p.Pos).NegateLocal()
			if pull.Normalize() > 0 {
				acc.AddLocal(pull.MulLocal(s.Attract))
			}
			e.scratch.Free(pull)
		}
		p.Vel.AddLocal(acc.MulLocal(s.Dt)).MulLocal(s.Damping)
		e.scratch.Free(acc)

		delta := e.scratch.Obtain()
		delta.SetVector(p.Vel).MulLocal(s.Dt)
		p.Pos.AddLocal(delta)
		e.scratch.Free(delta)
	}
	e.step++
}

// Run advances the simulation to the scenario's step count and collects the
// result. Observers are called after every step.
func (e *Engine) Run(observers ...Observer) Result {
	s := &e.scenario

	minPos := vec2d.NewZero()
	maxPos := vec2d.NewZero()
	if len(e.particles) > 0 {
		minPos.SetVector(e.particles[0].Pos)
		maxPos.SetVector(e.particles[0].Pos)
	}

	// per-step peak speeds, ordered fastest first
	peaks := sortedmap.New(s.Steps, func(x, y interface{}) bool {
		return x.(float64) > y.(float64)
	})

	maxSpeed := 0.0
	sumSpeed := 0.0
	samples := 0
	for e.step < s.Steps {
		e.Step()

		stepPeak := 0.0
		for i := range e.particles {
			p := &e.particles[i]
			vec2d.MinToOut(minPos, p.Pos, minPos)
			vec2d.MaxToOut(maxPos, p.Pos, maxPos)

			speed := float64(p.Vel.Length())
			sumSpeed += speed
			samples++
			if speed > stepPeak {
				stepPeak = speed
			}
		}
		peaks.Insert(e.step, stepPeak)
		if stepPeak > maxSpeed {
			maxSpeed = stepPeak
		}

		for _, observe := range observers {
			observe(e.step, e.particles)
		}
	}

	result := Result{
		ScenarioName: s.Name,
		Steps:        e.step,
		Particles:    len(e.particles),
		Metrics:      orderedmap.New[string, float64](),
	}
	result.Metrics.Set("maxSpeed", maxSpeed)
	if samples > 0 {
		result.Metrics.Set("meanSpeed", sumSpeed/float64(samples))
	}
	result.Metrics.Set("minX", float64(minPos.X))
	result.Metrics.Set("minY", float64(minPos.Y))
	result.Metrics.Set("maxX", float64(maxPos.X))
	result.Metrics.Set("maxY", float64(maxPos.Y))

	for _, key := range peaks.Keys() {
		result.FastestSteps = append(result.FastestSteps, key.(int))
		if len(result.FastestSteps) == fastestStepsReported {
			break
		}
	}

	return result
}

const fastestStepsReported = 3

// Result summarizes one run.
type Result struct {
	ScenarioName string
	Steps        int
	Particles    int
	// Metrics iterates in insertion order so reports are stable
	Metrics *orderedmap.OrderedMap[string, float64]
	// FastestSteps holds the step numbers with the highest peak speed, fastest first
	FastestSteps []int
}
