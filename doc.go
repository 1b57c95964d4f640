// Package automaton implements a nondeterministic finite automaton (NFA)
// engine for regular-expression analysis: automata as directed labelled
// graphs whose edges carry character sets rather than single symbols,
// built from regex ASTs or word lists, combined by union/concat/quantify,
// and intersected via product construction.
//
// The engine is single-threaded and synchronous. NFA values are mutable;
// concurrent use by two mutators, or a mutator and a reader, is undefined.
// Callers requiring parallelism must serialize access externally or work
// on independent Copies.
//
// This package does not parse regex source text and does not serialize a
// state machine back to one; see the regexast package for the AST and
// emitter contracts it consumes and produces.
package automaton
