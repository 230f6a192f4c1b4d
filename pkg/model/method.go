package model

//go:generate go run github.com/dmarkham/enumer -type Method -trimprefix Method -transform lower -json -sql -output method.gen.go

// Method is the closed set of ways a session can be established.
type Method int

const (
	MethodEmail Method = iota
	MethodUsername
	MethodApplication
	MethodGoogle
)
