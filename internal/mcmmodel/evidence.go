package mcmmodel

import (
	"encoding/binary"
	"math"
)

// largeComponentOrder is the ICC size above which the exact Dirichlet
// normalizer is replaced by its large-N asymptotic approximation, since the
// exact q^r normalizer grows too large to be numerically useful beyond it.
const largeComponentOrder = 25

// ObservationCount is one distinct projected state observed for an ICC,
// together with how many dataset rows produced it.
type ObservationCount struct {
	State Operator
	Count int
}

// CountObservations projects every dataset row onto component (AND-ing each
// plane with the component mask) and tallies how many rows land on each
// distinct projected state.
func CountObservations(data []Operator, component Component) map[string]*ObservationCount {
	counts := make(map[string]*ObservationCount)
	for _, obs := range data {
		proj := make(Operator, len(obs))
		for i, plane := range obs {
			proj[i] = plane.And(component)
		}
		key := stateKey(proj)
		if e, ok := counts[key]; ok {
			e.Count++
		} else {
			counts[key] = &ObservationCount{State: proj, Count: 1}
		}
	}
	return counts
}

func stateKey(planes Operator) string {
	buf := make([]byte, 16*len(planes))
	for i, c := range planes {
		binary.LittleEndian.PutUint64(buf[16*i:], c.Lo)
		binary.LittleEndian.PutUint64(buf[16*i+8:], c.Hi)
	}
	return string(buf)
}

// CalcEvidenceICC computes the Dirichlet-multinomial log-evidence of
// treating component (of size r) as a single ICC, given the dataset and
// the alphabet size q with N total observations. For r above
// largeComponentOrder it uses the large-N asymptotic form instead of the
// exact pow_q[r] normalizer, since pow_q[r] grows too large to be useful
// there.
func CalcEvidenceICC(data []Operator, component Component, q, N, r int, powQ []float64) float64 {
	counts := CountObservations(data, component)

	logEvidence := 0.0
	for _, entry := range counts {
		lg, _ := math.Lgamma(float64(entry.Count) + 0.5)
		logEvidence += lg
	}
	logEvidence -= float64(len(counts)) * 0.5 * math.Log(math.Pi)

	if r > largeComponentOrder {
		logEvidence -= float64(r) * math.Log(float64(q)) * float64(N)
	} else {
		lg1, _ := math.Lgamma(powQ[r] / 2)
		lg2, _ := math.Lgamma(float64(N) + powQ[r]/2)
		logEvidence += lg1 - lg2
	}
	return logEvidence
}

// GetEvidenceICC returns the memoized log-evidence of component as a single
// ICC, computing and caching it on first access. It uses the dense vector
// when the Model is in exhaustive mode, the sparse map otherwise.
func (m *Model) GetEvidenceICC(component Component) float64 {
	if m.Exhaustive {
		idx := component.AsIndex()
		if v := m.denseCache[idx]; v != 0.0 {
			return v
		}
		v := m.calcEvidenceICC(component)
		m.denseCache[idx] = v
		return v
	}
	if v, ok := m.sparseCache[component]; ok {
		return v
	}
	v := m.calcEvidenceICC(component)
	m.sparseCache[component] = v
	return v
}

func (m *Model) calcEvidenceICC(component Component) float64 {
	r := ComponentSize(component)
	return CalcEvidenceICC(m.Data, component, m.Q, m.N, r, m.PowQ)
}

// CalcEvidence sums the per-ICC log-evidence over every nonempty component
// of a partition, giving the total log-evidence of that MCM.
func (m *Model) CalcEvidence(p Partition) float64 {
	total := 0.0
	for _, c := range p {
		if !c.IsZero() {
			total += m.GetEvidenceICC(c)
		}
	}
	return total
}
