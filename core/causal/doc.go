// Package causal builds causal-effect estimators from a dataset and a task
// description.
//
// Each Factory holds the choice of base learners for one methodology (double
// machine learning, doubly robust, meta-learners, causal tree, approximation
// bounds, two-stage IV, deep IV). Build checks that the roles the method
// needs are present, infers the treatment's task kind, assembles the nuisance
// models through a learner.Builder and hands everything to the estimator
// library. Factories are looked up by tag in the registry returned by
// NewRegistry:
//
//	| tags                     | required roles          |
//	|--------------------------|-------------------------|
//	| dml                      | adjustment, covariate   |
//	| dr                       | adjustment              |
//	| meta_learner, ml         | adjustment              |
//	| causal_tree, tree        | adjustment              |
//	| approx_bound, bound      | covariate               |
//	| iv                       | instrument              |
//	| deep_iv, div             | instrument              |
package causal
