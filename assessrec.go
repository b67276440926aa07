// Package assessrec recommends SHL assessment products for a job
// description. It scrapes the product catalog, extracts assessment
// entries with their support flags, and ranks them against a free-text
// query using TF-IDF cosine similarity.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// trafilatura/, rod/) or their technique (tfidf/).
package assessrec
