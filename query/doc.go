/*
Package query compiles abstract filter objects into native query plans.

A Filter carries the optional where/order/limit/skip/fields clauses the
framework layer passes down. Compile translates it into a Plan: a set
of implicitly-ANDed predicates, ordering directives, an offset-based
pagination window, and a field projection.

Operator translation:

	lt → <    lte → <=    gt → >    gte → >=    ne → !=    in → in

There is no native OR. Unrecognized operators fail the compile with an
UnsupportedOperatorError rather than being silently dropped.

Two shapes deserve care:

  - An order clause that normalizes to an empty list short-circuits the
    compile and yields a nil plan ("nothing to do", not an error).
  - A fields object with no true entry yields an empty select list,
    which means all fields; it does not exclude everything.

Skip translates to a result offset, which the backing store evaluates
in O(skip). That cost is accepted; cursors are not part of this layer.
*/
package query
