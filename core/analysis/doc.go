// Package analysis derives the fleet statistics and the mock analytical
// views (fuel mix, carbon sensitivity, robustness, pareto frontier, heatmap,
// Shapley ranking, scenario comparison) from generated vessels.
//
// Functions are pure apart from the random stream passed to the views that
// sample noise.
package analysis
