package effect

import (
	"context"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"go.viam.com/dynoctree/logging"
	"go.viam.com/dynoctree/octree"
	"go.viam.com/dynoctree/pointcloud"
)

type particle struct {
	id     int
	handle octree.PointHandle
	pos    r3.Vector
}

// Simulator owns a tree and the particles stored in it. It is driven from a single goroutine.
type Simulator struct {
	cfg       Config
	logger    logging.Logger
	tree      *octree.Tree
	rng       *rand.Rand
	particles []particle
	neighbors []pointcloud.Point
}

// StepResult describes one frame of the simulation.
type StepResult struct {
	Moved     int
	Neighbors int
}

// Report summarizes a run.
type Report struct {
	Steps           int
	Moves           int
	MeanNeighbors   float64
	StdDevNeighbors float64
	P95Neighbors    float64
	MaxNeighbors    int
	Stats           octree.Stats
}

// NewSimulator builds the tree described by cfg and seeds it with cfg.Points particles
// scattered normally around the tree origin.
func NewSimulator(cfg Config, logger logging.Logger) (*Simulator, error) {
	if _, err := cfg.Validate("effect"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("effect")
	}
	tree, err := octree.NewFromConfig(&cfg.Tree, logger.Sublogger("octree"))
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:       cfg,
		logger:    logger,
		tree:      tree,
		rng:       rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec
		particles: make([]particle, 0, cfg.Points),
	}
	for i := 0; i < cfg.Points; i++ {
		pos := cfg.Tree.Origin.Add(s.normal(cfg.Spread))
		h, err := tree.SafeInsert(pos, i)
		if err != nil {
			return nil, errors.Wrapf(err, "seeding particle %d", i)
		}
		s.particles = append(s.particles, particle{id: i, handle: h, pos: pos})
	}
	logger.Debugw("seeded particles", "count", cfg.Points, "tree", tree.Stats().String())
	return s, nil
}

// Tree returns the tree indexing the particles.
func (s *Simulator) Tree() *octree.Tree {
	return s.tree
}

// Step moves every particle by a random offset and then finds the neighbors of one randomly
// chosen particle.
func (s *Simulator) Step() (StepResult, error) {
	var res StepResult
	for i := range s.particles {
		p := &s.particles[i]
		next := p.pos.Add(s.normal(s.cfg.Jitter))
		if err := s.tree.SafeRemove(p.handle); err != nil {
			return res, errors.Wrapf(err, "moving particle %d", p.id)
		}
		h, err := s.tree.SafeInsert(next, p.id)
		if err != nil {
			return res, errors.Wrapf(err, "moving particle %d", p.id)
		}
		p.handle = h
		p.pos = next
		res.Moved++
	}

	if len(s.particles) > 0 {
		focus := s.particles[s.rng.Intn(len(s.particles))]
		s.neighbors = s.tree.QueryRadiusInto(s.neighbors[:0], focus.pos, s.cfg.Radius)
		// the focus is its own neighbor
		res.Neighbors = len(s.neighbors) - 1
	}
	return res, nil
}

// Run steps the simulation until steps frames have run or ctx is done.
func (s *Simulator) Run(ctx context.Context, steps int) (Report, error) {
	var report Report
	counts := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := s.Step()
		if err != nil {
			return report, err
		}
		report.Steps++
		report.Moves += res.Moved
		counts = append(counts, float64(res.Neighbors))
	}

	if len(counts) > 0 {
		report.MeanNeighbors = stat.Mean(counts, nil)
		report.MaxNeighbors = int(lo.Max(counts))
		p95, err := stats.Percentile(counts, 95)
		if err != nil {
			return report, errors.Wrap(err, "cannot summarize neighbor counts")
		}
		report.P95Neighbors = p95
	}
	if len(counts) > 1 {
		report.StdDevNeighbors = stat.StdDev(counts, nil)
	}
	report.Stats = s.tree.Stats()
	s.logger.Debugw("run complete", "steps", report.Steps, "moves", report.Moves, "tree", report.Stats.String())
	return report, nil
}

func (s *Simulator) normal(scale float64) r3.Vector {
	return r3.Vector{
		X: s.rng.NormFloat64() * scale,
		Y: s.rng.NormFloat64() * scale,
		Z: s.rng.NormFloat64() * scale,
	}
}
