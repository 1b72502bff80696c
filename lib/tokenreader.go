package lib

type tokenReader interface {
	Next() (tok token, done bool)
	Peek() (tok token, done bool)
}
