// internal/gff/types.go
package gff

// GFF3 column order.
// http://www.sequenceontology.org/gff3.shtml
const (
	fieldSeqID = iota
	fieldSource
	fieldType
	fieldStart
	fieldEnd
	fieldScore
	fieldStrand
	fieldPhase
	fieldAttributes

	numFields
)

// Feature is one qualifying annotation line. Start and End are 1-based
// inclusive as written in the file. Attributes is populated by ScanAll only;
// the filtered Scan discards the attribute map once the predicate has run.
type Feature struct {
	SeqID      string
	Type       string
	Start      int
	End        int
	Strand     string
	Attributes map[string]string
}

// Filter selects annotation lines by feature type and one attribute
// key/value pair, both compared by exact string equality. An empty Key
// selects on type alone.
type Filter struct {
	Type  string
	Key   string
	Value string
}

// SequenceSet maps a sequence identifier to its concatenated sequence data.
// A later FASTA header reusing an identifier replaces the earlier entry.
type SequenceSet map[string][]byte

// Get returns the sequence for id and whether it is present.
func (s SequenceSet) Get(id string) ([]byte, bool) {
	seq, ok := s[id]
	return seq, ok
}
