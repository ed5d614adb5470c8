package extract

import (
	"bufio"
	"strconv"
	"strings"
)

// Record is a single observed benchmark sample.
type Record struct {
	Implementation string
	Threads        int
	Throughput     float64
}

// Dataset groups records by implementation name. It preserves both the order
// implementations first appear in the raw output and the order records appear
// within each implementation.
type Dataset struct {
	order   []string
	samples map[string][]Record
}

func NewDataset() *Dataset {
	return &Dataset{samples: make(map[string][]Record)}
}

// Append adds a record to its implementation's sequence, creating the sequence
// on first encounter. Repeated (name, threads) pairs accumulate; nothing is
// deduplicated.
func (d *Dataset) Append(r Record) {
	if _, ok := d.samples[r.Implementation]; !ok {
		d.order = append(d.order, r.Implementation)
	}
	d.samples[r.Implementation] = append(d.samples[r.Implementation], r)
}

// Implementations returns the implementation names in first-seen order.
func (d *Dataset) Implementations() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Samples returns the records for one implementation in encounter order.
func (d *Dataset) Samples(name string) []Record {
	return d.samples[name]
}

// Empty reports whether no records were captured.
func (d *Dataset) Empty() bool {
	return len(d.order) == 0
}

// Size returns the total number of records across all implementations.
func (d *Dataset) Size() int {
	n := 0
	for _, recs := range d.samples {
		n += len(recs)
	}
	return n
}

// SkipReason explains why a line was not captured as a record.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipNoComma
	SkipHeader
	SkipFieldCount
	SkipBadThreads
	SkipBadThroughput
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipNoComma:
		return "no comma separator"
	case SkipHeader:
		return "header line"
	case SkipFieldCount:
		return "field count != 3"
	case SkipBadThreads:
		return "unparsable thread count"
	case SkipBadThroughput:
		return "unparsable throughput"
	}
	return "unknown"
}

// Outcome is the classification of a single raw output line.
type Outcome struct {
	Record  Record
	Matched bool
	Reason  SkipReason
}

// Classify applies the record grammar to one line. A line must contain a comma,
// must not contain the literal "Threads" (the column header), and must split
// into exactly three fields: name, base-10 thread count, decimal throughput.
// Anything else is skipped with a reason rather than treated as an error; the
// benchmark process is free to interleave arbitrary diagnostics with its
// records.
func Classify(line string) Outcome {
	if !strings.Contains(line, ",") {
		return Outcome{Reason: SkipNoComma}
	}
	if strings.Contains(line, "Threads") {
		return Outcome{Reason: SkipHeader}
	}

	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Outcome{Reason: SkipFieldCount}
	}

	threads, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Outcome{Reason: SkipBadThreads}
	}
	throughput, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return Outcome{Reason: SkipBadThroughput}
	}

	return Outcome{
		Matched: true,
		Record: Record{
			Implementation: strings.TrimSpace(parts[0]),
			Threads:        threads,
			Throughput:     throughput,
		},
	}
}

// Parse scans raw benchmark output line by line and collects every matching
// record in encounter order. An empty dataset is a valid result, not an error.
func Parse(raw string) *Dataset {
	ds := NewDataset()
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		if oc := Classify(scanner.Text()); oc.Matched {
			ds.Append(oc.Record)
		}
	}
	return ds
}
