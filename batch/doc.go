// Package batch generates test cases in bulk and searches each one for a
// complete subset.
//
// A run draws a random table for every case, writes the full and reduced
// datasets, searches the reduced dataset with cartesian.FindMinimal and writes
// the answer.  A case that fails is recorded and the run moves on to the next
// one; the ids of failed cases are written to an error log when the run ends.
//
//	store, err := casefile.Open("out")
//	...
//	r := batch.New(
//		batch.WithStore(store),
//		batch.WithCases(100),
//		batch.WithSeed(42),
//	)
//	rep, err := r.Run(ctx)
package batch
