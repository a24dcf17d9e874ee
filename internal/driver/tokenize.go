package driver

import (
	"brainrot/internal/diag"
	"brainrot/internal/lexer"
	"brainrot/internal/source"
	"brainrot/internal/token"
)

// TokenizeResult is the classified stream of one file, nothing rewritten.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path. significant drops whitespace and comments.
func Tokenize(path string, maxDiagnostics int, significant bool) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := &TokenizeResult{FileSet: fs, File: fs.Get(id), Bag: diag.NewBag(maxDiagnostics)}
	res.Tokens = lexer.New(res.File, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}}).All()
	if significant {
		res.Tokens = lexer.Significant(res.Tokens)
	}
	return res, nil
}
