package scheduling

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/magliflex/planner/pkg/domain/entities"
)

// stepDailyCapacity computes the achievable pieces per day for one routing
// step under the piece-throughput model.
//
// Machine-bound steps sum, over every machine matching the required type
// and fineness, the lesser of the machine's own hourly capacity and the
// step's cycle-time throughput (60 / minutes per piece), times the working
// hours in a day. Unbound steps fall back to the phase's flat daily
// capacity. A step with neither is a data-quality problem, not a fatal
// error: it contributes zero capacity and a warning.
func (s *Scheduler) stepDailyCapacity(step entities.CycleStep, snap *snapshot, warnings *[]string) float64 {
	phase, ok := snap.phases[step.PhaseID]
	if !ok {
		warn := fmt.Sprintf("cycle step references unknown phase %s; treated as zero capacity", step.PhaseID)
		log.Warn().Str("phase", string(step.PhaseID)).Msg("cycle step references unknown phase")
		*warnings = append(*warnings, warn)
		return 0
	}

	if step.MachineBound() {
		cycleThroughput := math.Inf(1)
		if step.MinutesPerPiece > 0 {
			cycleThroughput = 60 / step.MinutesPerPiece
		}

		total := 0.0
		for _, m := range snap.machines {
			if !m.Matches(step.MachineType, step.Fineness) {
				continue
			}
			total += math.Min(m.HourlyCapacity, cycleThroughput) * s.config.WorkingHoursPerDay
		}
		if total == 0 {
			warn := fmt.Sprintf("no machine matches type %q fineness %d for phase %s; treated as zero capacity",
				step.MachineType, step.Fineness, phase.Name)
			log.Warn().
				Str("phase", phase.Name).
				Str("machineType", step.MachineType).
				Int("fineness", int(step.Fineness)).
				Msg("no machine matches cycle step requirements")
			*warnings = append(*warnings, warn)
		}
		return total
	}

	if phase.HasDailyCapacity() {
		return float64(phase.DailyCapacity)
	}

	warn := fmt.Sprintf("phase %q has no capacity definition (no machine binding, no daily capacity); treated as zero capacity", phase.Name)
	log.Warn().Str("phase", phase.Name).Msg("phase has no capacity definition")
	*warnings = append(*warnings, warn)
	return 0
}

// bottleneckCapacity returns the minimum daily capacity across an article's
// cycle steps. The slowest phase caps the whole lot's daily output: the
// cycle is modeled as a synchronized batch, not an overlapping pipeline.
func (s *Scheduler) bottleneckCapacity(article *entities.Article, snap *snapshot, warnings *[]string) float64 {
	if len(article.Cycle) == 0 {
		return 0
	}

	bottleneck := math.Inf(1)
	for _, step := range article.Cycle {
		capacity := s.stepDailyCapacity(step, snap, warnings)
		if capacity < bottleneck {
			bottleneck = capacity
		}
	}
	if math.IsInf(bottleneck, 1) {
		return 0
	}
	return bottleneck
}

// assignMachine picks the machine recorded on a workload entry for display:
// the first machine matching the step's type and fineness, the first
// machine in inventory as a placeholder for unbound steps, or NoMachine
// when the inventory is empty.
func assignMachine(step entities.CycleStep, machines []*entities.Machine) entities.MachineID {
	if step.MachineBound() {
		for _, m := range machines {
			if m.Matches(step.MachineType, step.Fineness) {
				return m.ID
			}
		}
		return entities.NoMachine
	}
	if len(machines) > 0 {
		return machines[0].ID
	}
	return entities.NoMachine
}
