// Package stats counts replacements per rule and renders the end-of-run
// report.
package stats

// Entry is one rule's cumulative replacement count
type Entry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Collector keeps per-rule counts in first-seen order. It is not safe for
// concurrent use; parallel callers keep one collector each and Merge them.
type Collector struct {
	order  []string
	counts map[string]int64
}

// NewCollector returns a collector with a zero counter for each name
func NewCollector(names ...string) *Collector {
	c := &Collector{counts: make(map[string]int64, len(names))}
	for _, name := range names {
		c.ensure(name)
	}
	return c
}

func (c *Collector) ensure(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
		c.counts[name] = 0
	}
}

// Add adds n to the counter for name, appending unknown names
func (c *Collector) Add(name string, n int64) {
	c.ensure(name)
	c.counts[name] += n
}

// Count returns the counter for name
func (c *Collector) Count(name string) int64 {
	return c.counts[name]
}

// Total returns the sum of all counters
func (c *Collector) Total() int64 {
	var total int64
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Snapshot returns a copy of all counters in insertion order
func (c *Collector) Snapshot() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, Entry{Name: name, Count: c.counts[name]})
	}
	return entries
}

// Merge adds every counter of other into c
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		c.Add(name, other.counts[name])
	}
}
