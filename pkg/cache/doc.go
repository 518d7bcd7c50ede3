// Package cache provides a small generic LRU cache.
//
// formcheck uses it to keep compiled rule expressions, so schemas that repeat
// an expression, or validators built over and over from the same schema,
// compile each expression once:
//
//	programs := cache.NewLRU[string, cel.Program](256)
//	prg, err := programs.GetOrCompute(source, func() (cel.Program, error) {
//		return compile(source)
//	})
//
// All methods are safe for concurrent use.
package cache
