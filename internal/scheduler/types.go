package scheduler

import "sort"

// SubjectBudget tracks the hours each subject still needs. It remembers the
// order subjects were added in so that ties sort deterministically.
type SubjectBudget struct {
	order []string
	hours map[string]int
}

// NewSubjectBudget returns an empty budget.
func NewSubjectBudget() *SubjectBudget {
	return &SubjectBudget{hours: make(map[string]int)}
}

// Set assigns the remaining hours for a subject, registering it on first use.
func (b *SubjectBudget) Set(subject string, hours int) {
	if _, ok := b.hours[subject]; !ok {
		b.order = append(b.order, subject)
	}
	b.hours[subject] = hours
}

// Hours returns the remaining hours for a subject (0 if unknown).
func (b *SubjectBudget) Hours(subject string) int {
	return b.hours[subject]
}

// Consume subtracts scheduled hours from a subject, flooring at zero.
func (b *SubjectBudget) Consume(subject string, hours int) {
	left, ok := b.hours[subject]
	if !ok {
		return
	}
	left -= hours
	if left < 0 {
		left = 0
	}
	b.hours[subject] = left
}

// Subjects returns the subjects in insertion order.
func (b *SubjectBudget) Subjects() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Total sums the remaining hours across all subjects.
func (b *SubjectBudget) Total() int {
	total := 0
	for _, h := range b.hours {
		total += h
	}
	return total
}

// ByRemaining returns the subjects ordered by remaining hours descending.
// Equal subjects keep their insertion order.
func (b *SubjectBudget) ByRemaining() []string {
	out := b.Subjects()
	sort.SliceStable(out, func(i, j int) bool {
		return b.hours[out[i]] > b.hours[out[j]]
	})
	return out
}

// Clone returns an independent copy of the budget.
func (b *SubjectBudget) Clone() *SubjectBudget {
	c := NewSubjectBudget()
	for _, s := range b.order {
		c.Set(s, b.hours[s])
	}
	return c
}
