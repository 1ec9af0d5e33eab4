package result

import (
	"sort"

	"github.com/scylladb/go-set/strset"
)

// Evaluations is a deduplicated collection of evaluations that preserves insertion order.
type Evaluations struct {
	byFingerprint map[Fingerprint]Evaluation
	order         []Fingerprint
}

func NewEvaluations(evaluations ...Evaluation) Evaluations {
	e := Evaluations{
		byFingerprint: make(map[Fingerprint]Evaluation),
	}
	e.Add(evaluations...)
	return e
}

func (r *Evaluations) Add(evaluations ...Evaluation) {
	if r.byFingerprint == nil {
		r.byFingerprint = make(map[Fingerprint]Evaluation)
	}
	for _, newEvaluation := range evaluations {
		fingerprint := newEvaluation.Fingerprint()

		// checking the same version against the same requirement is deterministic, keep the first outcome
		if _, exists := r.byFingerprint[fingerprint]; exists {
			continue
		}

		r.byFingerprint[fingerprint] = newEvaluation
		r.order = append(r.order, fingerprint)
	}
}

func (r *Evaluations) Merge(other Evaluations) {
	for _, fingerprint := range other.order {
		r.Add(other.byFingerprint[fingerprint])
	}
}

// Enumerate yields the evaluations in insertion order.
func (r *Evaluations) Enumerate() <-chan Evaluation {
	channel := make(chan Evaluation)
	go func() {
		defer close(channel)
		for _, fingerprint := range r.order {
			channel <- r.byFingerprint[fingerprint]
		}
	}()
	return channel
}

// Sorted returns the evaluations ordered by version precedence, then by requirement string.
func (r *Evaluations) Sorted() []Evaluation {
	evaluations := make([]Evaluation, 0)
	for e := range r.Enumerate() {
		evaluations = append(evaluations, e)
	}

	sort.Sort(ByVersion(evaluations))

	return evaluations
}

// Count returns the total number of evaluations in the collection.
func (r *Evaluations) Count() int {
	return len(r.byFingerprint)
}

// SatisfiedCount returns the number of evaluations where the version satisfied the requirement.
func (r *Evaluations) SatisfiedCount() int {
	count := 0
	for _, fingerprint := range r.order {
		if r.byFingerprint[fingerprint].Satisfied {
			count++
		}
	}
	return count
}

// UnsatisfiedCount returns the number of evaluations where the version did not satisfy the requirement.
func (r *Evaluations) UnsatisfiedCount() int {
	return r.Count() - r.SatisfiedCount()
}

// AllSatisfied indicates if every version in the collection satisfied its requirement.
func (r *Evaluations) AllSatisfied() bool {
	return r.UnsatisfiedCount() == 0
}

// ConstraintStrings returns the distinct requirement strings in the collection, sorted.
func (r *Evaluations) ConstraintStrings() []string {
	set := strset.New()
	for _, fingerprint := range r.order {
		set.Add(fingerprint.Constraint)
	}
	list := set.List()
	sort.Strings(list)
	return list
}
