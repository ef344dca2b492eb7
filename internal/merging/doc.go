// Package merging executes group merges: it inspects each group member,
// skips encrypted or unreadable sources, concatenates the survivors into a
// single document, and writes it under a collision-safe name.
//
// The PDF backend is abstracted behind the Engine interface so the executor
// can be tested without real PDF files; the default engine is pdfcpu.
package merging
