/*
Package confluxer provides an order-2, character-level Markov chain generator
for producing plausible made-up words, such as names, from a list of examples.

A Confluxer is trained once at construction time from one or more corpora,
where each line holds one utterance. Every line is lowercased using full
Unicode rules and then scanned with a three-rune window. The first two runes
of the window form a prefix, and the third is recorded as a possible
continuation of that prefix. Prefixes that begin a line become start prefixes.

Generation picks a start prefix at random and extends it one rune at a time by
sampling from the continuations recorded for the trailing two runes. Duplicate
continuations are kept, so sampling uniformly reproduces the frequencies seen
in the corpus.

	c, err := confluxer.New("names.txt")
	if err != nil {
		return err
	}
	name, ok, err := c.Next(8)

A trained Confluxer is read-only and safe for concurrent use.
*/
package confluxer
