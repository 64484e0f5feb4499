// Package notes is the per-account persistent note collection. Each note's
// text is a math expression; notes have no identity of their own and are
// addressed purely by position in the account's ordered sequence.
package notes

// Note is one record in an account's collection. Notes are created by
// append and removed by delete; individual edits are not supported.
type Note struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
