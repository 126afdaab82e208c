// Package ampmodel deserializes declaratively described amplitude models
// and validates them against their embedded reference checksums.
//
// A model document (JSON or YAML) lists functions and distributions as
// typed component specs, the parameter points they were recorded at and the
// checksum values expected there. The pipeline has pluggable layers:
//
//   - extension - the component kind registry mapping type tags to factories
//   - builder   - spec to object construction and workspace population
//   - workspace - the named collection of built evaluable components
//   - validator - checkpoint evaluation and discrepancy classification
//
// End-users typically interact via the high-level Service façade exposed by
// the root package:
//
//	srv := ampmodel.New()
//	results, _ := srv.Run(ctx, "model.json")
//	fmt.Print(validator.Report(results))
//
// For more details see the README and individual sub-packages.
package ampmodel
