// Package textutil provides the filename analysis primitives used for
// similarity scoring: numeric token extraction, text normalization, and a
// sequence-matching similarity ratio.
//
// All functions are pure and total. Numeric tokens are maximal digit runs of
// three or more characters; shorter runs (version markers, page counts) carry
// no identifying signal and are ignored. Normalized text is the filename with
// its extension, digits, diacritics, and punctuation stripped, suitable for
// fuzzy comparison between files that share wording but not reference numbers.
package textutil
