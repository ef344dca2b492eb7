package merging

// Info describes a source PDF as seen by the engine.
type Info struct {
	Pages     int
	Encrypted bool
}

// Engine abstracts the PDF backend used to inspect sources and write merged
// output.
type Engine interface {
	// Inspect opens the document at path and reports its page count. An
	// encrypted document is reported via Info.Encrypted, not an error;
	// errors mean the file could not be read as a PDF at all.
	Inspect(path string) (Info, error)
	// Merge concatenates the inputs, in order, into a single document at
	// output.
	Merge(inputs []string, output string) error
}
