// Package tab implements a deterministic, single-pass pipeline of
// relational operations over ordered, in-memory tabular datasets.
//
// Basics
//
// A Dataset is an ordered sequence of rows sharing one schema: a list of
// named, typed columns.  The operations that make up a pipeline are:
//
// ReadCSV, which parses a delimited source into a dataset, inferring each
// column's type from a scan of the whole column.
//
// Project, which keeps a subset of the columns, by name, by a predicate
// over names, or negated (Without).
//
// GroupBy, which partitions the rows by equality of one or more key
// columns into an explicit GroupedDataset, and Reduce, which collapses
// each group to one summary row of named aggregates.
//
// Restrict, which keeps the rows satisfying a predicate over attributes.
//
// Derive, which computes a new column from a pure expression over the
// existing ones.
//
// OrderBy, which sorts stably by one or more columns.
//
// LeftJoin, which matches rows against a second dataset on declared key
// columns, keeping every left row and nulling unmatched right fields.
//
// Rename and Reorder, which only touch the schema, and WriteCSV, which
// serializes the result.
//
// Unlike relational algebra proper, datasets here are ordered and may
// contain duplicate rows; restrict and join preserve order, sorting is
// stable, and join tie-breaks are pinned, so a pipeline is a pure
// function of its inputs.
//
// Attributes, the typed values held under them, predicates, and the named
// errors live in the subpackage tab/att.
//
// Every operation either returns a fresh dataset or fails with one of the
// named errors; a failure travels down the method chain and comes out of
// Err or the terminal write, and no partial output is ever written.
// Everything is synchronous and single-threaded; memory residency is
// proportional to the number of input rows.
package tab
