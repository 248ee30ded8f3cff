// Package montecarlo approximates the future growth distribution of a
// multi-asset investment portfolio by resampling historical annual returns.
//
// The core functionalities include:
//   - Return Pools: deriving, per asset, the empirical sequence of yearly
//     fractional returns from a chronological series of year-end closes.
//   - Simulation Engine: generating many independent multi-year trajectories
//     of the portfolio value, drawing each asset's return uniformly with
//     replacement from its pool and rebalancing to the target weights at the
//     start of every simulated year.
//   - Statistics: summarizing the distribution of final growth outcomes
//     (mean, median, range) and answering range-probability queries,
//     including the probability of outperforming a benchmark return.
//
// The statistical assumption is deliberate and simple: historical annual
// returns are i.i.d. and representative of future draws. There is no
// cross-asset correlation, no transaction cost, no dividend or contribution
// modeling.
//
// This package serves as the foundational logic for the `mcs` command-line
// tool; fetching historical prices and rendering reports live in the
// yahoo and renderer packages respectively.
package montecarlo
