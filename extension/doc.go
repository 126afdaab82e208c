// Package extension provides the run-time registry mapping serialized
// component type names to their configuration types and factories. The
// built-in kinds are installed by the root package; applications extend the
// set through the public options without touching the builder.
package extension
