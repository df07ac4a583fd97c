// Package main builds libimagesl, a dynamically-loadable image-operations
// library with a C calling convention. Build it with:
//
//	go build -buildmode=c-shared -o libimagesl.so .
//
// A consumer resolves the single exported symbol "functions" (declared in
// imagesl.h), calls it with no arguments, receives the imgsl_functions table
// by value, and checks the table's size field against its own compiled
// expectation before calling any operation pointer. See imagesl.h for the
// full contract.
//
// The library performs no logging and provides no internal synchronization
// beyond its own handle bookkeeping: concurrent calls against distinct
// handles are safe, concurrent calls against the same handle must be
// serialized by the caller.
package main

// main is never run; c-shared libraries still require a main package.
func main() {}
