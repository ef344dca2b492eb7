// Package similarity scores pairs of filenames for relatedness.
//
// A shared numeric token (case or document reference number) is treated as
// near-certain proof that two files belong together and dominates the final
// score. Textual similarity of the normalized filenames is the fallback
// signal when no numeric evidence exists.
package similarity
