// Package mask applies a Venn diagram — an ordered sequence of
// (set, polarity) terms combined by logical AND — to a slice of labels,
// producing a boolean inclusion/exclusion mask.
//
// A label x satisfies term (S, p) iff (x ∈ S) == p. The diagram as a
// whole is satisfied iff every term is satisfied; evaluation is
// short-circuited on the first unsatisfied term.
package mask
