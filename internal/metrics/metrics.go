package metrics

import (
	"sync"
	"time"
)

type pipelineStats struct {
	generations        int
	generationErrors   int
	validationRuns     int
	gateFailures       map[string]int
	gamesSimulated     int
	playoffAdvances    int
	playoffErrors      int
	draftOrders        int
	lastGenerationTime time.Duration
}

// Recorder captures lightweight, in-memory metrics about pipeline runs.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats pipelineStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: pipelineStats{gateFailures: make(map[string]int)},
		otel:  otel,
	}
}

// RecordGeneration counts a schedule generation and stores its latency.
func (r *Recorder) RecordGeneration(year int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.generations++
	r.stats.lastGenerationTime = duration
	if err != nil {
		r.stats.generationErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGeneration(year, duration, err)
	}
}

// RecordValidation counts a validator run and its failed gates.
func (r *Recorder) RecordValidation(failedGates []string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.validationRuns++
	for _, gate := range failedGates {
		r.stats.gateFailures[gate]++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordValidation(failedGates)
	}
}

// RecordGamesSimulated counts simulated games.
func (r *Recorder) RecordGamesSimulated(n int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.gamesSimulated += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGamesSimulated(n)
	}
}

// RecordPlayoffAdvance counts a bracket advance attempt.
func (r *Recorder) RecordPlayoffAdvance(round string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.playoffAdvances++
	if err != nil {
		r.stats.playoffErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPlayoffAdvance(round, err)
	}
}

// RecordDraftOrder counts a computed draft order.
func (r *Recorder) RecordDraftOrder() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.draftOrders++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordDraftOrder()
	}
}

// Generations returns the total schedule generations recorded.
func (r *Recorder) Generations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.generations
}

// GenerationErrors returns the failed generation count.
func (r *Recorder) GenerationErrors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.generationErrors
}

// ValidationRuns returns the validator run count.
func (r *Recorder) ValidationRuns() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.validationRuns
}

// GateFailures returns how often a named gate has failed.
func (r *Recorder) GateFailures(gate string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.gateFailures[gate]
}

// GamesSimulated returns the simulated game count.
func (r *Recorder) GamesSimulated() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.gamesSimulated
}

// PlayoffAdvances returns the bracket advance count.
func (r *Recorder) PlayoffAdvances() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.playoffAdvances
}

// DraftOrders returns the computed draft order count.
func (r *Recorder) DraftOrders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.draftOrders
}

// LastGenerationTime returns the most recent generation latency.
func (r *Recorder) LastGenerationTime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.lastGenerationTime
}
