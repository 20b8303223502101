// core/token/window.go
package token

import "github.com/unixpickle/wordembed/word2vec"

// Windows builds one skip-gram context sample per token position, keeping
// at most radius neighbors on each side. The samples alias the given token
// slice's strings, so callers should not mutate toks afterwards.
func Windows(toks []Token, radius int) []*word2vec.Sample {
	if len(toks) == 0 || radius < 0 {
		return nil
	}
	strs := make([]string, len(toks))
	for i, t := range toks {
		strs[i] = string(t)
	}
	out := make([]*word2vec.Sample, 0, len(toks))
	for i := range strs {
		s := &word2vec.Sample{
			Left:  strs[:i],
			Word:  strs[i],
			Right: strs[i+1:],
		}
		out = append(out, s.Trim(radius))
	}
	return out
}
