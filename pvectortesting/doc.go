// Package pvectortesting provides the shared fixtures used by the pvector
// tests and by anything else that wants to exercise vectors: a TestContext
// carrying a logger and a seeded generator, element generators, and
// assertions for contents and structural sharing.
package pvectortesting
