// Package metrics defines how estimator builds are observed. A
// BuildRecorder receives one BuildEvent per Build call; several recorders
// can be combined with NewMultiRecorder. Recorders are instantiated from
// configuration through the registry in this package.
package metrics
