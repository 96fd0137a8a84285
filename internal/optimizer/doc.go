// Package optimizer runs the shelf arrangement pipeline.
//
// The optimizer follows a pipeline pattern:
//
//	Catalog → Placement Engine → Validation → Actuator → Report
//	(Source)   (Annealing)        (Check)      (Metrics)  (ShelfArrangement)
//
// Example usage:
//
//	opt := optimizer.NewOptimizer(spec, source, actuator.NewMetricsEmitter())
//	run, err := opt.Optimize(ctx)
//	if err != nil {
//	    logger.Error(err, "optimization failed")
//	    return err
//	}
//	logger.Info("optimization complete", "cost", run.Outcome.Best.Cost)
//
// Optimization Flow:
//
//  1. Load the catalog
//     - Convert records into items
//     - Skip records with missing or malformed measurements
//
//  2. Place the items
//     - Build an initial solution from whole author groups
//     - Anneal it with the configured strategy
//
//  3. Validate
//     - Check shelf capacities and author contiguity
//     - Check that no item was lost or duplicated
//
//  4. Actuate
//     - Emit metrics
//     - Build the ShelfArrangement document with its conditions
//
// A validation failure is returned as an error together with the run, so callers
// can still report the arrangement that failed.
package optimizer
